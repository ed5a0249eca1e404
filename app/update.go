package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cornish/nodemap/ui"
)

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.searching {
		return a.handleSearchKey(msg)
	}
	a.statusbar.ClearMessage()

	k := a.keys
	step := float64(a.cfg.Canvas.PanStep)
	cx, cy := a.area.Size()
	cx, cy = cx/2, cy/2

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Cancel):
		a.cancelDrags()
	case key.Matches(msg, k.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a.layout()

	// the camera moves, so content shifts the other way
	case key.Matches(msg, k.PanLeft):
		a.area.Pan(step, 0)
	case key.Matches(msg, k.PanRight):
		a.area.Pan(-step, 0)
	case key.Matches(msg, k.PanUp):
		a.area.Pan(0, step)
	case key.Matches(msg, k.PanDown):
		a.area.Pan(0, -step)
	case key.Matches(msg, k.ZoomIn):
		a.area.Zoom(a.cfg.Canvas.ZoomStep, cx, cy)
	case key.Matches(msg, k.ZoomOut):
		a.area.Zoom(1/a.cfg.Canvas.ZoomStep, cx, cy)
	case key.Matches(msg, k.Fit):
		if !a.area.Fit() {
			a.statusbar.SetMessage("Nothing to fit", "info")
		}
	case key.Matches(msg, k.Back):
		if !a.area.Back() {
			a.statusbar.SetMessage("No earlier view", "info")
		}
	case key.Matches(msg, k.Forward):
		if !a.area.Forward() {
			a.statusbar.SetMessage("No later view", "info")
		}

	case key.Matches(msg, k.Search):
		a.searching = true
		a.search.SetValue("")
		cmd := tea.Batch(a.search.Focus(), textinput.Blink)
		if !a.showSidebar {
			a.showSidebar = true
			cmd = tea.Batch(cmd, a.layout())
		}
		return cmd
	case key.Matches(msg, k.NextNode):
		a.sidebar.CursorDown()
		a.syncSelection()
		a.area.Focus(a.selected)
	case key.Matches(msg, k.PrevNode):
		a.sidebar.CursorUp()
		a.syncSelection()
		a.area.Focus(a.selected)
	case key.Matches(msg, k.Focus):
		a.syncSelection()
		a.area.Focus(a.selected)

	case key.Matches(msg, k.ToggleMinimap):
		a.mmRenderer.Toggle()
		return a.layout()
	case key.Matches(msg, k.ToggleSidebar):
		a.showSidebar = !a.showSidebar
		return a.layout()
	case key.Matches(msg, k.ToggleInspector):
		a.inspector.Toggle()
		return a.layout()
	case key.Matches(msg, k.CopyView):
		a.copyView()
	}
	return nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		a.endSearch()
		a.sidebar.SetItems(ui.NodeItems(a.area.Graph()))
		a.selectNode(a.selected)
		return nil
	case tea.KeyEnter:
		a.endSearch()
		if len(a.sidebar.Items()) == 0 {
			a.statusbar.SetMessage("No matching node", "info")
			a.sidebar.SetItems(ui.NodeItems(a.area.Graph()))
			return nil
		}
		a.syncSelection()
		a.area.Focus(a.selected)
		a.sidebar.SetItems(ui.NodeItems(a.area.Graph()))
		a.selectNode(a.selected)
		return nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.applySearch()
	return cmd
}

func (a *App) endSearch() {
	a.searching = false
	a.search.Blur()
}

// applySearch lists the nodes matching the query, best first.
func (a *App) applySearch() {
	q := strings.TrimSpace(a.search.Value())
	if q == "" {
		a.sidebar.SetItems(ui.NodeItems(a.area.Graph()))
		return
	}
	a.sidebar.SetItems(ui.MatchItems(a.area.Graph().Search(q)))
	a.sidebar.Select(0)
}

// handleMouse routes a mouse message. Moves and releases always reach
// the drag surface. Presses go to the minimap first; the canvas only
// sees them when the minimap did not stop propagation.
func (a *App) handleMouse(msg tea.MouseMsg) {
	e := ui.NewPointerEvent(msg, a.sidebarWidth, 0)

	if typ, ok := ui.DragEvent(msg); ok {
		a.surface.Dispatch(typ, e)
		return
	}
	if msg.Action != tea.MouseActionPress {
		return
	}

	if a.minimapShown() && (a.minimap.Panning() || a.minimap.Contains(e)) {
		switch {
		case msg.Button != tea.MouseButtonLeft:
			a.minimap.Click(e)
		case a.clicks.Press(msg.X, msg.Y):
			a.minimap.DoubleClick(e)
		default:
			a.minimap.PointerDown(e)
		}
	}
	if e.Stopped() {
		return
	}
	a.clicks.Reset()

	if !a.onCanvas(msg) {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		if n, ok := a.area.NodeAt(e.X, e.Y); ok {
			a.selectNode(n.ID)
		}
		a.canvasDrag.Start(e)
	case tea.MouseButtonWheelUp:
		a.area.Zoom(a.cfg.Canvas.ZoomStep, e.X, e.Y)
	case tea.MouseButtonWheelDown:
		a.area.Zoom(1/a.cfg.Canvas.ZoomStep, e.X, e.Y)
	}
}

func (a *App) onCanvas(msg tea.MouseMsg) bool {
	x := msg.X - a.sidebarWidth
	return x >= 0 && x < a.canvasCols && msg.Y >= 0 && msg.Y < a.canvasRows
}
