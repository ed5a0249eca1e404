package config

import "testing"

func TestAllActionsHaveNamesAndDefaults(t *testing.T) {
	kb := DefaultKeybindings()
	for _, action := range AllActions() {
		if _, ok := ActionNames[action]; !ok {
			t.Errorf("action %q has no display name", action)
		}
		if kb.GetBinding(action).Primary == "" {
			t.Errorf("action %q has no default key", action)
		}
	}
	if len(AllActions()) != len(ActionNames) {
		t.Errorf("AllActions() has %d entries, ActionNames %d", len(AllActions()), len(ActionNames))
	}
}

func TestDefaultKeybindingsNoConflicts(t *testing.T) {
	if c := DefaultKeybindings().FindConflicts(); len(c) != 0 {
		t.Errorf("default keybindings conflict: %v", c)
	}
}

func TestSetBinding(t *testing.T) {
	kb := DefaultKeybindings()
	kb.SetBinding("fit", KeyBinding{Primary: "F", Alternate: "ctrl+f"})
	if got := kb.Fit; got.Primary != "F" || got.Alternate != "ctrl+f" {
		t.Errorf("Fit = %+v", got)
	}
	kb.SetBinding("no_such_action", KeyBinding{Primary: "z"})
	if kb.GetBinding("no_such_action") != (KeyBinding{}) {
		t.Error("unknown action should have no binding")
	}

	kb.SetBinding("zoom_in", KeyBinding{Primary: "F"})
	conflicts := kb.FindConflicts()
	if len(conflicts["F"]) != 2 {
		t.Errorf("FindConflicts()[F] = %v, want two actions", conflicts["F"])
	}
}

func TestFindConflictsFollowsMatches(t *testing.T) {
	tests := []struct {
		name     string
		fit      string
		zoomIn   string
		key      string
		conflict bool
	}{
		{"same key", "f", "f", "f", true},
		{"letters differ in case", "F", "f", "f", false},
		{"named keys differ in case", "ctrl+f", "Ctrl+F", "ctrl+f", true},
		{"alt vs ctrl", "ctrl+f", "alt+f", "ctrl+f", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := DefaultKeybindings()
			kb.SetBinding("fit", KeyBinding{Primary: tt.fit})
			kb.SetBinding("zoom_in", KeyBinding{Primary: tt.zoomIn})

			bothMatch := kb.Fit.Matches(tt.key) && kb.ZoomIn.Matches(tt.key)
			if bothMatch != tt.conflict {
				t.Fatalf("both bindings match %q = %v, want %v", tt.key, bothMatch, tt.conflict)
			}
			got := len(kb.FindConflicts()[tt.key]) == 2
			if got != tt.conflict {
				t.Errorf("FindConflicts()[%q] = %v, want conflict %v", tt.key, kb.FindConflicts()[tt.key], tt.conflict)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		key     string
		want    bool
	}{
		{KeyBinding{Primary: "n"}, "n", true},
		{KeyBinding{Primary: "n"}, "N", false},
		{KeyBinding{Primary: "N"}, "N", true},
		{KeyBinding{Primary: "ctrl+c"}, "CTRL+C", true},
		{KeyBinding{Primary: "q", Alternate: "ctrl+c"}, "ctrl+c", true},
		{KeyBinding{}, "", false},
	}

	for _, tt := range tests {
		if got := tt.binding.Matches(tt.key); got != tt.want {
			t.Errorf("%+v.Matches(%q) = %v, want %v", tt.binding, tt.key, got, tt.want)
		}
	}
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{}, "(none)"},
		{KeyBinding{Primary: "ctrl+c"}, "Ctrl+c"},
		{KeyBinding{Primary: "left", Alternate: "h"}, "← / h"},
		{KeyBinding{Primary: "[", Alternate: "alt+left"}, "[ / Alt+left"},
		{KeyBinding{Primary: "enter"}, "Enter"},
	}

	for _, tt := range tests {
		if got := tt.binding.DisplayString(); got != tt.want {
			t.Errorf("DisplayString(%+v) = %q, want %q", tt.binding, got, tt.want)
		}
	}
}
