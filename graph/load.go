package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/cornish/nodemap/encoding"
)

// Format is a document serialization.
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "toml"
}

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown graph format %q", filepath.Ext(path))
	}
}

// ErrUnknownNode is wrapped by Parse when a connection names a node that
// does not exist.
var ErrUnknownNode = errors.New("unknown node")

// ErrDuplicateNode is wrapped by Parse when two nodes share an ID.
var ErrDuplicateNode = errors.New("duplicate node id")

// LoadError reports a document that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load graph %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a graph document. The file may be in any encoding Detect
// recognizes.
func Load(path string) (*Graph, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	data, det, err := encoding.ToUTF8(raw)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	g, err := Parse(data, format)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if g.Name == "" {
		g.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if det.Charset != nil {
		g.Encoding = det.Charset.Name
	}
	return g, nil
}

// Parse decodes UTF-8 data and fills in defaults.
func Parse(data []byte, format Format) (*Graph, error) {
	g := &Graph{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(g); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), g); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	}
	if err := g.normalize(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) normalize() error {
	seen := make(map[string]bool, len(g.Nodes))
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if seen[n.ID] {
			return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
		}
		seen[n.ID] = true
		if n.Width <= 0 {
			n.Width = DefaultNodeWidth
		}
		if n.Height <= 0 {
			n.Height = DefaultNodeHeight
		}
		if n.Kind == "" {
			n.Kind = DefaultKind
		}
	}
	for i := range g.Connections {
		c := &g.Connections[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		for _, end := range []string{c.From, c.To} {
			if !seen[end] {
				return fmt.Errorf("connection %s: %q: %w", c.ID, end, ErrUnknownNode)
			}
		}
	}
	return nil
}
