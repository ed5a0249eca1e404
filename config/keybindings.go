package config

import (
	"strings"
)

// KeyBinding represents a single action's key bindings
type KeyBinding struct {
	Primary   string `toml:"primary"`
	Alternate string `toml:"alternate,omitempty"`
}

// KeybindingsConfig holds all configurable keybindings
type KeybindingsConfig struct {
	Quit KeyBinding `toml:"quit"`
	Help KeyBinding `toml:"help"`

	// Camera
	PanLeft  KeyBinding `toml:"pan_left"`
	PanRight KeyBinding `toml:"pan_right"`
	PanUp    KeyBinding `toml:"pan_up"`
	PanDown  KeyBinding `toml:"pan_down"`
	ZoomIn   KeyBinding `toml:"zoom_in"`
	ZoomOut  KeyBinding `toml:"zoom_out"`
	Fit      KeyBinding `toml:"fit"`
	Back     KeyBinding `toml:"back"`
	Forward  KeyBinding `toml:"forward"`

	// Nodes
	Search   KeyBinding `toml:"search"`
	NextNode KeyBinding `toml:"next_node"`
	PrevNode KeyBinding `toml:"prev_node"`
	Focus    KeyBinding `toml:"focus"`

	// View toggles
	ToggleMinimap   KeyBinding `toml:"toggle_minimap"`
	ToggleSidebar   KeyBinding `toml:"toggle_sidebar"`
	ToggleInspector KeyBinding `toml:"toggle_inspector"`
	CopyView        KeyBinding `toml:"copy_view"`
}

// DefaultKeybindings returns the default keybinding configuration
func DefaultKeybindings() *KeybindingsConfig {
	return &KeybindingsConfig{
		Quit: KeyBinding{Primary: "q", Alternate: "ctrl+c"},
		Help: KeyBinding{Primary: "?"},

		PanLeft:  KeyBinding{Primary: "left", Alternate: "h"},
		PanRight: KeyBinding{Primary: "right", Alternate: "l"},
		PanUp:    KeyBinding{Primary: "up", Alternate: "k"},
		PanDown:  KeyBinding{Primary: "down", Alternate: "j"},
		ZoomIn:   KeyBinding{Primary: "+", Alternate: "="},
		ZoomOut:  KeyBinding{Primary: "-"},
		Fit:      KeyBinding{Primary: "f"},
		Back:     KeyBinding{Primary: "[", Alternate: "alt+left"},
		Forward:  KeyBinding{Primary: "]", Alternate: "alt+right"},

		Search:   KeyBinding{Primary: "/"},
		NextNode: KeyBinding{Primary: "n"},
		PrevNode: KeyBinding{Primary: "N"},
		Focus:    KeyBinding{Primary: "enter"},

		ToggleMinimap:   KeyBinding{Primary: "m"},
		ToggleSidebar:   KeyBinding{Primary: "tab"},
		ToggleInspector: KeyBinding{Primary: "i"},
		CopyView:        KeyBinding{Primary: "y"},
	}
}

// ActionNames maps action names for display
var ActionNames = map[string]string{
	"quit":             "Quit",
	"help":             "Help",
	"pan_left":         "Pan Left",
	"pan_right":        "Pan Right",
	"pan_up":           "Pan Up",
	"pan_down":         "Pan Down",
	"zoom_in":          "Zoom In",
	"zoom_out":         "Zoom Out",
	"fit":              "Fit Graph",
	"back":             "Back",
	"forward":          "Forward",
	"search":           "Search",
	"next_node":        "Next Node",
	"prev_node":        "Previous Node",
	"focus":            "Focus Node",
	"toggle_minimap":   "Toggle Minimap",
	"toggle_sidebar":   "Toggle Sidebar",
	"toggle_inspector": "Toggle Inspector",
	"copy_view":        "Copy View",
}

// bindings lists every action with its field, in display order.
func (kb *KeybindingsConfig) bindings() []struct {
	action string
	b      *KeyBinding
} {
	return []struct {
		action string
		b      *KeyBinding
	}{
		{"quit", &kb.Quit},
		{"help", &kb.Help},
		{"pan_left", &kb.PanLeft},
		{"pan_right", &kb.PanRight},
		{"pan_up", &kb.PanUp},
		{"pan_down", &kb.PanDown},
		{"zoom_in", &kb.ZoomIn},
		{"zoom_out", &kb.ZoomOut},
		{"fit", &kb.Fit},
		{"back", &kb.Back},
		{"forward", &kb.Forward},
		{"search", &kb.Search},
		{"next_node", &kb.NextNode},
		{"prev_node", &kb.PrevNode},
		{"focus", &kb.Focus},
		{"toggle_minimap", &kb.ToggleMinimap},
		{"toggle_sidebar", &kb.ToggleSidebar},
		{"toggle_inspector", &kb.ToggleInspector},
		{"copy_view", &kb.CopyView},
	}
}

// GetBinding returns the KeyBinding for a given action name
func (kb *KeybindingsConfig) GetBinding(action string) KeyBinding {
	for _, e := range kb.bindings() {
		if e.action == action {
			return *e.b
		}
	}
	return KeyBinding{}
}

// SetBinding sets the KeyBinding for a given action name
func (kb *KeybindingsConfig) SetBinding(action string, binding KeyBinding) {
	for _, e := range kb.bindings() {
		if e.action == action {
			*e.b = binding
			return
		}
	}
}

// AllActions returns a list of all action names in display order
func AllActions() []string {
	var kb KeybindingsConfig
	entries := kb.bindings()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.action
	}
	return out
}

// Keys returns the bound keys, primary first.
func (b KeyBinding) Keys() []string {
	var keys []string
	if b.Primary != "" {
		keys = append(keys, b.Primary)
	}
	if b.Alternate != "" {
		keys = append(keys, b.Alternate)
	}
	return keys
}

// Matches checks if a key string matches this binding (primary or alternate).
// Single characters compare exactly so "n" and "N" stay distinct.
func (b KeyBinding) Matches(key string) bool {
	for _, k := range b.Keys() {
		if k == key || (len(k) > 1 && strings.EqualFold(k, key)) {
			return true
		}
	}
	return false
}

// normalizeKey folds the case of named keys the way Matches compares
// them. Single characters keep their case.
func normalizeKey(key string) string {
	if len(key) > 1 {
		return strings.ToLower(key)
	}
	return key
}

// DisplayString returns a human-readable string for the binding
func (b KeyBinding) DisplayString() string {
	if b.Primary == "" && b.Alternate == "" {
		return "(none)"
	}
	if b.Alternate == "" {
		return FormatKeyForDisplay(b.Primary)
	}
	return FormatKeyForDisplay(b.Primary) + " / " + FormatKeyForDisplay(b.Alternate)
}

// FormatKeyForDisplay converts a key string to a more readable format
func FormatKeyForDisplay(key string) string {
	if len(key) <= 1 {
		return key
	}
	r := strings.NewReplacer(
		"ctrl+", "Ctrl+",
		"alt+", "Alt+",
		"shift+", "Shift+",
	)
	key = r.Replace(key)
	switch key {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "enter":
		return "Enter"
	case "tab":
		return "Tab"
	}
	return key
}

// FindConflicts checks for key conflicts and returns a map of conflicting actions
func (kb *KeybindingsConfig) FindConflicts() map[string][]string {
	conflicts := make(map[string][]string)
	keyToActions := make(map[string][]string)

	for _, e := range kb.bindings() {
		for _, k := range e.b.Keys() {
			nk := normalizeKey(k)
			keyToActions[nk] = append(keyToActions[nk], e.action)
		}
	}

	for key, actions := range keyToActions {
		if len(actions) > 1 {
			conflicts[key] = actions
		}
	}

	return conflicts
}
