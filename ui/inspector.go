package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/cornish/nodemap/config"
	"github.com/cornish/nodemap/graph"
	"github.com/cornish/nodemap/syntax"
)

// nodeDoc is the inspector's view of a node.
type nodeDoc struct {
	ID      string         `toml:"id"`
	Label   string         `toml:"label"`
	Kind    string         `toml:"kind"`
	X       float64        `toml:"x"`
	Y       float64        `toml:"y"`
	Width   float64        `toml:"width"`
	Height  float64        `toml:"height"`
	Inputs  []string       `toml:"inputs,omitempty"`
	Outputs []string       `toml:"outputs,omitempty"`
	Props   map[string]any `toml:"props,omitempty"`
}

// NodeTOML encodes a node and the IDs of its neighbours as TOML.
func NodeTOML(g *graph.Graph, n graph.Node) (string, error) {
	doc := nodeDoc{
		ID:     n.ID,
		Label:  n.Label,
		Kind:   n.Kind,
		X:      n.X,
		Y:      n.Y,
		Width:  n.Width,
		Height: n.Height,
		Props:  n.Props,
	}
	if g != nil {
		for _, c := range g.Connections {
			switch n.ID {
			case c.To:
				doc.Inputs = append(doc.Inputs, c.From)
			case c.From:
				doc.Outputs = append(doc.Outputs, c.To)
			}
		}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return "", fmt.Errorf("encoding node %s: %w", n.ID, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// SyntaxColors converts theme syntax colors for the highlighter.
func SyntaxColors(c config.SyntaxColors) syntax.Colors {
	return syntax.Colors{
		Keyword: c.Keyword,
		String:  c.String,
		Comment: c.Comment,
		Number:  c.Number,
		Name:    c.Name,
	}
}

// Inspector shows the selected node's properties.
type Inspector struct {
	styles      Styles
	highlighter *syntax.Highlighter
	width       int
	enabled     bool
}

// NewInspector creates a hidden inspector.
func NewInspector(styles Styles) *Inspector {
	return &Inspector{
		styles:      styles,
		highlighter: syntax.New("toml", SyntaxColors(styles.Theme.Syntax)),
		width:       32,
	}
}

// SetStyles updates the styles for runtime theme changes.
func (i *Inspector) SetStyles(styles Styles) {
	i.styles = styles
	i.highlighter.SetColors(SyntaxColors(styles.Theme.Syntax))
}

// SetWidth sets the outer width in cells.
func (i *Inspector) SetWidth(width int) {
	i.width = width
}

// Width returns the outer width, or 0 while hidden.
func (i *Inspector) Width() int {
	if !i.enabled {
		return 0
	}
	return i.width
}

// Toggle shows or hides the inspector.
func (i *Inspector) Toggle() bool {
	i.enabled = !i.enabled
	return i.enabled
}

// IsEnabled reports whether the inspector is shown.
func (i *Inspector) IsEnabled() bool {
	return i.enabled
}

// View renders n inside a bordered box of the given height. A nil node
// shows an empty panel.
func (i *Inspector) View(g *graph.Graph, n *graph.Node, height int) string {
	if !i.enabled {
		return ""
	}
	style := i.styles.Inspector
	var content string
	if n == nil {
		content = i.styles.Subtle.Render("no node selected")
	} else {
		body, err := NodeTOML(g, *n)
		if err != nil {
			body = i.styles.Error.Render(err.Error())
		} else {
			body = i.highlighter.Render(body)
		}
		title := i.styles.InspectorTitle.Render(n.Title())
		content = lipgloss.JoinVertical(lipgloss.Left, title, "", body)
	}
	return style.
		Width(max(i.width-style.GetHorizontalBorderSize(), 1)).
		Height(max(height-style.GetVerticalFrameSize(), 1)).
		MaxHeight(height).
		Render(content)
}
