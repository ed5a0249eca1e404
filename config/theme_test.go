package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinThemesComplete(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := builtinThemes[name]
		merged := mergeWithDefault(theme)
		if merged.UI != theme.UI || merged.Syntax != theme.Syntax {
			t.Errorf("built-in theme %q is missing colors", name)
		}
	}
}

func TestDefaultThemeMinimapColors(t *testing.T) {
	ui := DefaultTheme().UI
	if ui.MinimapBg != "#010418" || ui.MinimapBorder != "#3C2857" || ui.MinimapNode != "#7C43C5" {
		t.Errorf("default minimap colors = %q %q %q", ui.MinimapBg, ui.MinimapBorder, ui.MinimapNode)
	}
}

func TestLoadThemeFallbacks(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if got := LoadTheme(""); got.Name != "default" {
		t.Errorf("LoadTheme(\"\") = %q, want default", got.Name)
	}
	if got := LoadTheme("classic"); got.Name != "classic" {
		t.Errorf("LoadTheme(classic) = %q", got.Name)
	}
	if got := LoadTheme("no-such-theme"); got.Name != "default" {
		t.Errorf("LoadTheme(unknown) = %q, want default", got.Name)
	}
}

func TestLoadUserTheme(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "nodemap", "themes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "name = \"mine\"\n[ui]\nminimap_node = \"#FF0000\"\n"
	if err := os.WriteFile(filepath.Join(dir, "mine.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	theme := LoadTheme("mine")
	if theme.UI.MinimapNode != "#FF0000" {
		t.Errorf("MinimapNode = %q, want #FF0000", theme.UI.MinimapNode)
	}
	if theme.UI.StatusBg != DefaultTheme().UI.StatusBg {
		t.Error("missing colors should come from the default theme")
	}

	users := ListUserThemes()
	if len(users) != 1 || users[0] != "mine" {
		t.Errorf("ListUserThemes() = %v, want [mine]", users)
	}
}
