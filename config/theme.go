package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// Theme holds complete color theme settings
// This is the format for theme TOML files in ~/.config/nodemap/themes/
type Theme struct {
	// Metadata
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`

	// UI Colors
	UI UIColors `toml:"ui"`

	// Inspector highlighting colors
	Syntax SyntaxColors `toml:"syntax"`
}

// UIColors holds UI color settings. Values are ANSI numbers ("4",
// "236") or hex ("#7C43C5").
type UIColors struct {
	CanvasBg     string `toml:"canvas_bg"`
	NodeBorder   string `toml:"node_border"`
	NodeTitle    string `toml:"node_title"`
	NodeSelected string `toml:"node_selected"`
	Connection   string `toml:"connection"`
	StatusBg     string `toml:"status_bg"`
	StatusFg     string `toml:"status_fg"`
	StatusAccent string `toml:"status_accent"`
	ErrorFg      string `toml:"error_fg"`
	SidebarFg    string `toml:"sidebar_fg"`
	SidebarMatch string `toml:"sidebar_match"`
	HelpFg       string `toml:"help_fg"`
	// Minimap colors
	MinimapBg       string `toml:"minimap_bg"`
	MinimapBorder   string `toml:"minimap_border"`
	MinimapNode     string `toml:"minimap_node"`
	MinimapViewport string `toml:"minimap_viewport"`
}

// SyntaxColors holds inspector highlighting color settings
type SyntaxColors struct {
	Keyword string `toml:"keyword"`
	String  string `toml:"string"`
	Comment string `toml:"comment"`
	Number  string `toml:"number"`
	Name    string `toml:"name"`
}

// Built-in themes
var builtinThemes = map[string]Theme{
	"default": {
		Name:        "default",
		Description: "Purple nodes on a deep navy minimap",
		Author:      "nodemap",
		UI: UIColors{
			CanvasBg:        "",
			NodeBorder:      "#7C43C5",
			NodeTitle:       "15",
			NodeSelected:    "#C9A2FF",
			Connection:      "#5B6BBF",
			StatusBg:        "#121D64",
			StatusFg:        "15",
			StatusAccent:    "#C9A2FF",
			ErrorFg:         "9",
			SidebarFg:       "252",
			SidebarMatch:    "#C9A2FF",
			HelpFg:          "245",
			MinimapBg:       "#010418",
			MinimapBorder:   "#3C2857",
			MinimapNode:     "#7C43C5",
			MinimapViewport: "#4A5BD6",
		},
		Syntax: SyntaxColors{
			Keyword: "#C9A2FF",
			String:  "114",
			Comment: "245",
			Number:  "215",
			Name:    "75",
		},
	},
	"classic": {
		Name:        "classic",
		Description: "16-color theme for basic terminals",
		Author:      "nodemap",
		UI: UIColors{
			NodeBorder:      "5",
			NodeTitle:       "15",
			NodeSelected:    "13",
			Connection:      "4",
			StatusBg:        "4",
			StatusFg:        "15",
			StatusAccent:    "14",
			ErrorFg:         "9",
			SidebarFg:       "7",
			SidebarMatch:    "13",
			HelpFg:          "8",
			MinimapBg:       "0",
			MinimapBorder:   "5",
			MinimapNode:     "13",
			MinimapViewport: "14",
		},
		Syntax: SyntaxColors{
			Keyword: "14",
			String:  "10",
			Comment: "8",
			Number:  "11",
			Name:    "12",
		},
	},
	"light": {
		Name:        "light",
		Description: "Light theme for bright environments",
		Author:      "nodemap",
		UI: UIColors{
			CanvasBg:        "255",
			NodeBorder:      "#7C43C5",
			NodeTitle:       "235",
			NodeSelected:    "#3C2857",
			Connection:      "249",
			StatusBg:        "254",
			StatusFg:        "235",
			StatusAccent:    "26",
			ErrorFg:         "160",
			SidebarFg:       "235",
			SidebarMatch:    "26",
			HelpFg:          "245",
			MinimapBg:       "254",
			MinimapBorder:   "249",
			MinimapNode:     "#7C43C5",
			MinimapViewport: "26",
		},
		Syntax: SyntaxColors{
			Keyword: "26",
			String:  "28",
			Comment: "245",
			Number:  "166",
			Name:    "90",
		},
	},
}

// DefaultTheme returns the built-in default theme
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// LoadTheme loads a theme by name
// Checks user themes directory first, then falls back to built-in themes
func LoadTheme(name string) Theme {
	if name == "" {
		return DefaultTheme()
	}

	if dir, err := ThemesDir(); err == nil {
		if theme, err := LoadThemeFile(filepath.Join(dir, name+".toml")); err == nil {
			return theme
		}
	}

	if builtin, ok := builtinThemes[name]; ok {
		return builtin
	}
	return DefaultTheme()
}

// LoadThemeFile decodes a theme file and fills gaps from the default
// theme.
func LoadThemeFile(path string) (Theme, error) {
	var theme Theme
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, err
	}
	return mergeWithDefault(theme), nil
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// mergeWithDefault fills in any missing theme values with defaults.
// CanvasBg may stay empty: it means the terminal background.
func mergeWithDefault(theme Theme) Theme {
	def := DefaultTheme()
	fill(&theme.Name, def.Name)

	ui, d := &theme.UI, def.UI
	fill(&ui.NodeBorder, d.NodeBorder)
	fill(&ui.NodeTitle, d.NodeTitle)
	fill(&ui.NodeSelected, d.NodeSelected)
	fill(&ui.Connection, d.Connection)
	fill(&ui.StatusBg, d.StatusBg)
	fill(&ui.StatusFg, d.StatusFg)
	fill(&ui.StatusAccent, d.StatusAccent)
	fill(&ui.ErrorFg, d.ErrorFg)
	fill(&ui.SidebarFg, d.SidebarFg)
	fill(&ui.SidebarMatch, d.SidebarMatch)
	fill(&ui.HelpFg, d.HelpFg)
	fill(&ui.MinimapBg, d.MinimapBg)
	fill(&ui.MinimapBorder, d.MinimapBorder)
	fill(&ui.MinimapNode, d.MinimapNode)
	fill(&ui.MinimapViewport, d.MinimapViewport)

	s, ds := &theme.Syntax, def.Syntax
	fill(&s.Keyword, ds.Keyword)
	fill(&s.String, ds.String)
	fill(&s.Comment, ds.Comment)
	fill(&s.Number, ds.Number)
	fill(&s.Name, ds.Name)

	return theme
}

// ThemeNames returns the list of built-in theme names
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListUserThemes returns a list of user-defined theme names
func ListUserThemes() []string {
	themesDir, err := ThemesDir()
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil
	}

	var themes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themes = append(themes, name[:len(name)-5]) // Remove .toml extension
		}
	}
	return themes
}
