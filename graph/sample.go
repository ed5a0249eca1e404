package graph

// Sample returns the demo graph shown when no document is given.
func Sample() *Graph {
	g := &Graph{
		Name: "sample",
		Nodes: []Node{
			{ID: "n1", Label: "Number", Kind: "input", X: 0, Y: 0, Props: map[string]any{"value": 1}},
			{ID: "n2", Label: "Number", Kind: "input", X: 0, Y: 200, Props: map[string]any{"value": 2}},
			{ID: "n3", Label: "Add", Kind: "math", X: 320, Y: 90},
			{ID: "n4", Label: "Number", Kind: "input", X: 320, Y: 340, Props: map[string]any{"value": 10}},
			{ID: "n5", Label: "Multiply", Kind: "math", X: 640, Y: 200},
			{ID: "n6", Label: "Log", Kind: "output", X: 960, Y: 120, Width: 220},
			{ID: "n7", Label: "Threshold", Kind: "logic", X: 960, Y: 420, Props: map[string]any{"min": 0, "max": 100}},
			{ID: "n8", Label: "Alert", Kind: "output", X: 1280, Y: 520},
		},
		Connections: []Connection{
			{ID: "c1", From: "n1", To: "n3"},
			{ID: "c2", From: "n2", To: "n3"},
			{ID: "c3", From: "n3", To: "n5"},
			{ID: "c4", From: "n4", To: "n5"},
			{ID: "c5", From: "n5", To: "n6"},
			{ID: "c6", From: "n5", To: "n7"},
			{ID: "c7", From: "n7", To: "n8"},
		},
	}
	if err := g.normalize(); err != nil {
		panic(err)
	}
	return g
}
