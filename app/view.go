package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cornish/nodemap/render"
	"github.com/cornish/nodemap/ui"
)

// renderCanvas draws one frame: connections under nodes, then the
// minimap on top.
func (a *App) renderCanvas() *ui.Grid {
	grid := ui.NewGrid(a.canvasCols, a.canvasRows, a.ascii)
	a.canvas.Begin(grid, a.area)

	g := a.area.Graph()
	for _, c := range g.Connections {
		from, to, ok := g.Endpoints(c)
		if !ok {
			continue
		}
		a.pipeline.Frame(render.Connection(render.ConnectionData{Connection: c, From: from, To: to}))
	}
	for _, n := range g.Nodes {
		a.pipeline.Frame(render.Node(render.NodeData{Node: n, Selected: n.ID == a.selected}))
	}

	if a.minimapShown() {
		props := a.minimapProps()
		a.minimap.SetProps(props)
		bounds, _ := a.minimap.Container().Bounds()
		a.pipeline.Frame(render.Minimap(render.MinimapData{
			Props:  props,
			Host:   a.area,
			Width:  a.minimap.Container().Width(),
			Bounds: bounds,
		}))
	}

	stats := a.canvas.Stats()
	t := a.area.Transform()
	a.statusbar.SetCounts(stats.Nodes, len(g.Nodes))
	a.statusbar.SetCamera(t.K, t.X, t.Y)
	return grid
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var panels []string
	if a.showSidebar {
		panels = append(panels, a.styles.Sidebar.
			Width(a.sidebarWidth-1).
			Height(a.canvasRows).
			MaxHeight(a.canvasRows).
			Render(a.sidebar.View()))
	}
	if a.canvasCols > 0 {
		panels = append(panels, a.renderCanvas().String())
	}
	if a.inspector.IsEnabled() {
		panels = append(panels, a.inspector.View(a.area.Graph(), a.selectedNode(), a.canvasRows))
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	bottom := a.help.View(a.keys)
	if a.searching {
		bottom = a.search.View()
	}

	var sb strings.Builder
	sb.WriteString(main)
	sb.WriteString("\n")
	sb.WriteString(bottom)
	sb.WriteString("\n")
	sb.WriteString(a.statusbar.View())
	return sb.String()
}
