package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchGraph() *Graph {
	return &Graph{Nodes: []Node{
		{ID: "1", Label: "Number"},
		{ID: "2", Label: "Add"},
		{ID: "3", Label: "Multiply Numbers"},
		{ID: "4", Label: "Logger"},
		{ID: "5", Label: "Log"},
		{ID: "6"},
	}}
}

func ids(ms []Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Node.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	g := searchGraph()

	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"num", []string{"1", "3"}},
		{"NUMBER", []string{"1", "3"}},
		{"log", []string{"5", "4"}},
		{"ad", []string{"2"}},
		{"nmber", []string{"1"}},
		{"6", []string{"6"}},
		{"zzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := g.Search(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearchSubstringBeforeFuzzy(t *testing.T) {
	g := &Graph{Nodes: []Node{
		{ID: "fuzzy", Label: "Ad"},
		{ID: "exact", Label: "Address Book"},
	}}
	got := g.Search("add")
	require.Len(t, got, 2)
	assert.Equal(t, "exact", got[0].Node.ID)
	assert.True(t, got[0].Substring)
	assert.False(t, got[1].Substring)
	assert.Equal(t, 1, got[1].Distance)
}
