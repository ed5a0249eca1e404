package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornish/nodemap/graph"
)

func TestNodeItems(t *testing.T) {
	g := graph.Sample()
	items := NodeItems(g)
	require.Len(t, items, len(g.Nodes))

	first := items[0].(NodeItem)
	assert.Equal(t, "Number", first.Title())
	assert.Equal(t, "input", first.Description())
	assert.Equal(t, "Number", first.FilterValue())
}

func TestMatchItems(t *testing.T) {
	items := MatchItems([]graph.Match{
		{Node: graph.Node{ID: "x", Label: "Add", Kind: "math"}, Substring: true},
		{Node: graph.Node{ID: "y", Label: "Log", Kind: "output"}, Distance: 1},
	})
	require.Len(t, items, 2)
	assert.Equal(t, "math", items[0].(NodeItem).Description())
	assert.Equal(t, "output · ~1", items[1].(NodeItem).Description())
}

func TestNodeList(t *testing.T) {
	l := NewNodeList(DefaultStyles(), 20, 10)
	l.SetItems(NodeItems(graph.Sample()))
	assert.Len(t, l.Items(), 8)
	assert.False(t, l.FilteringEnabled())
}

func TestSidebarWidth(t *testing.T) {
	g := &graph.Graph{Nodes: []graph.Node{{ID: "a", Label: "Threshold detector"}}}
	assert.Equal(t, 22, SidebarWidth(g, 200))
	assert.Equal(t, 10, SidebarWidth(g, 30))
	assert.Equal(t, 12, SidebarWidth(&graph.Graph{}, 200))
}
