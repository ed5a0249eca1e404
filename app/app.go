// Package app is the nodemap bubbletea model: a node canvas with a
// minimap overlay, a node sidebar and an inspector panel.
package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cornish/nodemap/area"
	"github.com/cornish/nodemap/clipboard"
	"github.com/cornish/nodemap/config"
	"github.com/cornish/nodemap/drag"
	"github.com/cornish/nodemap/graph"
	"github.com/cornish/nodemap/minimap"
	"github.com/cornish/nodemap/render"
	"github.com/cornish/nodemap/ui"
)

// Copier puts text on a clipboard.
type Copier interface {
	Copy(text string) (clipboard.Method, error)
}

// Options configures New.
type Options struct {
	Config *config.Config
	Graph  *graph.Graph
	// Path is the document path, empty for the sample graph.
	Path   string
	ASCII  bool
	Copier Copier
	Logger *slog.Logger
	// Message is shown in the status bar on start, e.g. a config error.
	Message     string
	MessageType string
}

// minimapMeasuredMsg reports the minimap container's width once it has
// been laid out.
type minimapMeasuredMsg struct {
	width float64
}

// App is the main bubbletea model.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	keys   keyMap
	styles ui.Styles

	// canvas and navigation
	area       *area.Area
	surface    *drag.Surface[*ui.PointerEvent]
	minimap    *minimap.View[*ui.PointerEvent]
	canvasDrag *drag.Controller[*ui.PointerEvent]
	clicks     *ui.ClickTracker
	pipeline   *render.Pipeline
	canvas     *ui.CanvasRenderer
	mmRenderer *ui.MinimapRenderer

	// panels
	statusbar   *ui.StatusBar
	inspector   *ui.Inspector
	sidebar     list.Model
	showSidebar bool
	search      textinput.Model
	searching   bool
	help        help.Model

	copier   Copier
	ascii    bool
	name     string
	selected string

	// layout in cells
	width        int
	height       int
	sidebarWidth int
	canvasCols   int
	canvasRows   int
	sized        bool
}

// New creates the model.
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := opts.Graph
	if g == nil {
		g = graph.Sample()
	}
	copier := opts.Copier
	if copier == nil {
		copier = clipboard.New(nil)
	}
	styles := ui.NewStyles(cfg.Theme.GetResolved())

	a := &App{
		cfg:         cfg,
		logger:      logger,
		keys:        newKeyMap(&cfg.Keys),
		styles:      styles,
		surface:     drag.NewSurface[*ui.PointerEvent](),
		clicks:      ui.NewClickTracker(time.Duration(cfg.Minimap.DoubleClickMS) * time.Millisecond),
		pipeline:    render.NewPipeline(logger),
		mmRenderer:  ui.NewMinimapRenderer(styles),
		statusbar:   ui.NewStatusBar(styles),
		inspector:   ui.NewInspector(styles),
		sidebar:     ui.NewNodeList(styles, 20, 10),
		showSidebar: true,
		help:        help.New(),
		copier:      copier,
		ascii:       opts.ASCII,
		name:        g.Name,
	}
	a.area = area.New(g, area.Options{
		MinZoom:     cfg.Canvas.MinZoom,
		MaxZoom:     cfg.Canvas.MaxZoom,
		HistorySize: area.DefaultOptions().HistorySize,
		FitPadding:  area.DefaultOptions().FitPadding,
	}, logger)

	a.minimap = minimap.NewView(a.area, a.surface, ui.PointerPosition, logger)
	// a cell is 2x4 dots; half a cell of slop each way
	a.minimap.SetHitSlop(ui.DotsPerCellX/2, ui.DotsPerCellY/2)
	a.mmRenderer.SetEnabled(cfg.Minimap.Enabled)
	a.canvasDrag = drag.New(a.surface, ui.PointerPosition, a.area.Pan)

	a.canvas = ui.NewCanvasRenderer(styles, a.mmRenderer)
	a.pipeline.Use(a.canvas.Pipe)

	a.search = textinput.New()
	a.search.Prompt = "/"
	a.search.PromptStyle = styles.SearchPrompt
	a.search.Placeholder = "search nodes"

	a.help.Styles.ShortKey = styles.HelpKey
	a.help.Styles.ShortDesc = styles.HelpDesc
	a.help.Styles.FullKey = styles.HelpKey
	a.help.Styles.FullDesc = styles.HelpDesc

	a.sidebar.SetItems(ui.NodeItems(g))

	if opts.Path != "" {
		a.name = filepath.Base(opts.Path)
	}
	a.statusbar.SetName(a.name)
	if g.Encoding != "" {
		a.statusbar.SetEncoding(g.Encoding)
	}
	if opts.Message != "" {
		a.statusbar.SetMessage(opts.Message, opts.MessageType)
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Area returns the canvas.
func (a *App) Area() *area.Area {
	return a.area
}

// Update implements tea.Model. The minimap gets fresh props after every
// message, as it would on every render.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.minimapShown() {
		a.minimap.SetProps(a.minimapProps())
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		cmd := a.layout()
		if !a.sized {
			a.sized = true
			if a.cfg.Canvas.FitOnOpen && a.area.Fit() {
				a.area.History().Clear()
			}
		}
		return cmd

	case minimapMeasuredMsg:
		a.minimap.Container().Measure(msg.width)
		a.logger.Debug("minimap measured", "width", msg.width)

	case tea.BlurMsg:
		a.cancelDrags()

	case tea.MouseMsg:
		a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return nil
}

// cancelDrags ends minimap and canvas drags without further movement.
func (a *App) cancelDrags() {
	a.surface.Dispatch(drag.EventCancel, &ui.PointerEvent{})
	a.clicks.Reset()
}

// minimapShown reports whether the minimap is enabled and placed.
func (a *App) minimapShown() bool {
	if !a.mmRenderer.IsEnabled() {
		return false
	}
	_, ok := a.minimap.Container().Bounds()
	return ok
}

func (a *App) minimapProps() minimap.Props {
	return a.area.MinimapProps(float64(a.cfg.Minimap.Size), a.cfg.Minimap.Ratio)
}

// layout sizes every panel from the window size. The returned command
// delivers the minimap's measured width, which lags placement the way a
// size observer does.
func (a *App) layout() tea.Cmd {
	helpHeight := 1
	if a.help.ShowAll {
		helpHeight = len(a.keys.FullHelp()[0])
		for _, col := range a.keys.FullHelp() {
			helpHeight = max(helpHeight, len(col))
		}
	}
	rows := max(a.height-1-helpHeight, 1)

	a.sidebarWidth = 0
	if a.showSidebar {
		a.sidebarWidth = ui.SidebarWidth(a.area.Graph(), a.width)
		// border plus padding
		a.sidebar.SetSize(max(a.sidebarWidth-2, 1), rows)
	}
	a.canvasCols = max(a.width-a.sidebarWidth-a.inspector.Width(), 0)
	a.canvasRows = rows
	a.area.Resize(float64(a.canvasCols*ui.DotsPerCellX), float64(a.canvasRows*ui.DotsPerCellY))

	a.statusbar.SetWidth(a.width)
	a.help.Width = a.width
	a.search.Width = max(a.width-2, 1)

	return a.placeMinimap()
}

func (a *App) placeMinimap() tea.Cmd {
	c := a.minimap.Container()
	if !a.mmRenderer.IsEnabled() {
		a.minimap.CancelPan()
		c.Unplace()
		return nil
	}
	props := a.minimapProps()
	a.minimap.SetProps(props)
	p, ok := ui.PlaceMinimap(a.canvasCols, a.canvasRows, props)
	if !ok {
		a.minimap.CancelPan()
		c.Unplace()
		return nil
	}
	c.Place(p.Bounds)
	width := p.Width
	return func() tea.Msg {
		return minimapMeasuredMsg{width: width}
	}
}

// syncSelection points the selection at the sidebar cursor.
func (a *App) syncSelection() {
	if item, ok := a.sidebar.SelectedItem().(ui.NodeItem); ok {
		a.selected = item.Node.ID
	}
}

// selectNode moves the sidebar cursor to the node with id.
func (a *App) selectNode(id string) {
	a.selected = id
	for i, it := range a.sidebar.Items() {
		if it.(ui.NodeItem).Node.ID == id {
			a.sidebar.Select(i)
			return
		}
	}
}

func (a *App) selectedNode() *graph.Node {
	n, ok := a.area.Graph().Node(a.selected)
	if !ok {
		return nil
	}
	return &n
}

// viewText renders the canvas without colors.
func (a *App) viewText() string {
	return a.renderCanvas().Plain()
}

func (a *App) copyView() {
	method, err := a.copier.Copy(a.viewText())
	if err != nil {
		a.logger.Warn("copy view", "err", err)
		a.statusbar.SetMessage(fmt.Sprintf("Copy failed: %v", err), "error")
		return
	}
	a.statusbar.SetMessage(fmt.Sprintf("Copied view (%s)", method), "info")
}
