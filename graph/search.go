package graph

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Match is a search hit.
type Match struct {
	Node     Node
	Distance int
	// Substring is true when the query appears in the label verbatim.
	Substring bool
}

// Search ranks nodes against query. Labels containing the query come
// first; the rest must be within a small edit distance of the label or
// one of its words. Matching ignores case.
func (g *Graph) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	limit := max(1, utf8.RuneCountInString(q)/3)

	var out []Match
	for _, n := range g.Nodes {
		label := strings.ToLower(n.Title())
		m := Match{Node: n, Distance: distance(q, label)}
		switch {
		case strings.Contains(label, q):
			m.Substring = true
		case m.Distance > limit:
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Substring != b.Substring {
			return a.Substring
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Node.Title() < b.Node.Title()
	})
	return out
}

// distance is the smallest edit distance between q and the label or any
// of its words.
func distance(q, label string) int {
	best := levenshtein.ComputeDistance(q, label)
	for _, w := range strings.Fields(label) {
		if d := levenshtein.ComputeDistance(q, w); d < best {
			best = d
		}
	}
	return best
}
