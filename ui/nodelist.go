package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mattn/go-runewidth"

	"github.com/cornish/nodemap/graph"
)

// NodeItem is a sidebar entry.
type NodeItem struct {
	Node graph.Node
	// Distance is the search distance, or -1 outside a search.
	Distance int
}

// FilterValue implements list.Item.
func (i NodeItem) FilterValue() string { return i.Node.Title() }

// Title implements list.DefaultItem.
func (i NodeItem) Title() string { return i.Node.Title() }

// Description implements list.DefaultItem.
func (i NodeItem) Description() string {
	if i.Distance > 0 {
		return fmt.Sprintf("%s · ~%d", i.Node.Kind, i.Distance)
	}
	return i.Node.Kind
}

// NodeItems lists every node of g in document order.
func NodeItems(g *graph.Graph) []list.Item {
	items := make([]list.Item, len(g.Nodes))
	for i, n := range g.Nodes {
		items[i] = NodeItem{Node: n, Distance: -1}
	}
	return items
}

// MatchItems lists search results in rank order.
func MatchItems(matches []graph.Match) []list.Item {
	items := make([]list.Item, len(matches))
	for i, m := range matches {
		items[i] = NodeItem{Node: m.Node, Distance: m.Distance}
	}
	return items
}

// NewNodeList creates the sidebar list with theme styles. Filtering is
// off; searches replace the items instead.
func NewNodeList(styles Styles, width, height int) list.Model {
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = styles.SidebarItem
	d.Styles.NormalDesc = styles.SidebarDesc
	d.Styles.SelectedTitle = styles.SidebarSelected
	d.Styles.SelectedDesc = styles.SidebarSelected.Bold(false)
	d.Styles.DimmedTitle = styles.Subtle
	d.Styles.DimmedDesc = styles.Subtle

	l := list.New(nil, d, width, height)
	l.Title = "Nodes"
	l.Styles.Title = styles.SidebarTitle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// SidebarWidth picks a sidebar width for the longest title, bounded by
// a share of the screen.
func SidebarWidth(g *graph.Graph, screen int) int {
	w := 12
	for _, n := range g.Nodes {
		w = max(w, runewidth.StringWidth(n.Title())+4)
	}
	return min(w, 28, screen/3)
}
