package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/cornish/nodemap/config"
)

// keyMap holds the bindings built from the user's config.
type keyMap struct {
	Quit            key.Binding
	Help            key.Binding
	PanLeft         key.Binding
	PanRight        key.Binding
	PanUp           key.Binding
	PanDown         key.Binding
	ZoomIn          key.Binding
	ZoomOut         key.Binding
	Fit             key.Binding
	Back            key.Binding
	Forward         key.Binding
	Search          key.Binding
	NextNode        key.Binding
	PrevNode        key.Binding
	Focus           key.Binding
	ToggleMinimap   key.Binding
	ToggleSidebar   key.Binding
	ToggleInspector key.Binding
	CopyView        key.Binding
	Cancel          key.Binding
}

func binding(kb *config.KeybindingsConfig, action string) key.Binding {
	b := kb.GetBinding(action)
	keys := b.Keys()
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(b.DisplayString(), config.ActionNames[action]),
	)
}

func newKeyMap(kb *config.KeybindingsConfig) keyMap {
	return keyMap{
		Quit:            binding(kb, "quit"),
		Help:            binding(kb, "help"),
		PanLeft:         binding(kb, "pan_left"),
		PanRight:        binding(kb, "pan_right"),
		PanUp:           binding(kb, "pan_up"),
		PanDown:         binding(kb, "pan_down"),
		ZoomIn:          binding(kb, "zoom_in"),
		ZoomOut:         binding(kb, "zoom_out"),
		Fit:             binding(kb, "fit"),
		Back:            binding(kb, "back"),
		Forward:         binding(kb, "forward"),
		Search:          binding(kb, "search"),
		NextNode:        binding(kb, "next_node"),
		PrevNode:        binding(kb, "prev_node"),
		Focus:           binding(kb, "focus"),
		ToggleMinimap:   binding(kb, "toggle_minimap"),
		ToggleSidebar:   binding(kb, "toggle_sidebar"),
		ToggleInspector: binding(kb, "toggle_inspector"),
		CopyView:        binding(kb, "copy_view"),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Fit, k.ZoomIn, k.ZoomOut, k.ToggleMinimap, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanLeft, k.PanRight, k.PanUp, k.PanDown},
		{k.ZoomIn, k.ZoomOut, k.Fit, k.Back, k.Forward},
		{k.Search, k.NextNode, k.PrevNode, k.Focus},
		{k.ToggleMinimap, k.ToggleSidebar, k.ToggleInspector, k.CopyView, k.Help, k.Quit},
	}
}
