package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cornish/nodemap/config"

	"github.com/charmbracelet/lipgloss"
)

// UseTrueColor controls whether hex colors use true color (24-bit) or
// fall back to the nearest 256-color. Set to false for older terminals.
var UseTrueColor = true

// ColorToANSIFg converts a theme color string to an ANSI foreground escape sequence
// Supports: "0"-"255" for indexed colors, "#RGB" or "#RRGGBB" for hex colors
// Hex colors use true color if UseTrueColor is true, otherwise nearest 256-color
func ColorToANSIFg(color string) string {
	if strings.HasPrefix(color, "#") {
		r, g, b := parseHexColor(color)
		if UseTrueColor {
			return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
		}
		// Fall back to nearest 256-color
		return fmt.Sprintf("\033[38;5;%dm", rgbTo256Color(r, g, b))
	}
	n, err := strconv.Atoi(color)
	if err != nil {
		return "\033[37m" // Default to white on error
	}
	if n < 16 {
		// Standard colors: use traditional codes for better compatibility
		if n < 8 {
			return fmt.Sprintf("\033[%dm", 30+n)
		}
		return fmt.Sprintf("\033[%dm", 90+(n-8))
	}
	return fmt.Sprintf("\033[38;5;%dm", n)
}

// ColorToANSIBg converts a theme color string to an ANSI background escape sequence
func ColorToANSIBg(color string) string {
	if strings.HasPrefix(color, "#") {
		r, g, b := parseHexColor(color)
		if UseTrueColor {
			return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
		}
		// Fall back to nearest 256-color
		return fmt.Sprintf("\033[48;5;%dm", rgbTo256Color(r, g, b))
	}
	n, err := strconv.Atoi(color)
	if err != nil {
		return "\033[40m" // Default to black on error
	}
	if n < 16 {
		// Standard colors: use traditional codes for better compatibility
		if n < 8 {
			return fmt.Sprintf("\033[%dm", 40+n)
		}
		return fmt.Sprintf("\033[%dm", 100+(n-8))
	}
	return fmt.Sprintf("\033[48;5;%dm", n)
}

// rgbTo256Color converts RGB values to the nearest 256-color palette index
func rgbTo256Color(r, g, b int) int {
	// Check if it's close to a grayscale color
	if isGrayscale(r, g, b) {
		return rgbToGrayscale(r, g, b)
	}
	// Convert to 6x6x6 color cube (colors 16-231)
	return 16 + 36*rgbTo6(r) + 6*rgbTo6(g) + rgbTo6(b)
}

// rgbTo6 converts an 8-bit color value to a 6-level value (0-5)
// The 6x6x6 cube uses values: 0, 95, 135, 175, 215, 255
func rgbTo6(v int) int {
	if v < 48 {
		return 0
	} else if v < 115 {
		return 1
	} else if v < 155 {
		return 2
	} else if v < 195 {
		return 3
	} else if v < 235 {
		return 4
	}
	return 5
}

// isGrayscale checks if RGB values are close enough to be grayscale
func isGrayscale(r, g, b int) bool {
	return max(r, g, b)-min(r, g, b) < 20
}

// rgbToGrayscale converts RGB to nearest grayscale in 232-255 range
func rgbToGrayscale(r, g, b int) int {
	// Average the values
	gray := (r + g + b) / 3
	// Grayscale colors 232-255 represent 24 shades
	// Values: 8, 18, 28, 38, ..., 238 (step of 10)
	if gray < 4 {
		return 16 // Use black from color cube
	}
	if gray > 243 {
		return 231 // Use white from color cube
	}
	// Map to 232-255 range
	return 232 + (gray-8)/10
}

// ColorToANSI returns combined fg+bg ANSI sequence
func ColorToANSI(fg, bg string) string {
	return ColorToANSIBg(bg) + ColorToANSIFg(fg)
}

// parseHexColor parses #RGB or #RRGGBB to r, g, b values
func parseHexColor(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 6 || err != nil {
		return 255, 255, 255 // Default to white on error
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

// Styles contains all the lipgloss styles used by the views
type Styles struct {
	// The theme these styles were generated from
	Theme config.Theme

	// Status bar styles
	StatusBar    lipgloss.Style
	StatusAccent lipgloss.Style

	// Sidebar styles
	Sidebar         lipgloss.Style
	SidebarTitle    lipgloss.Style
	SidebarItem     lipgloss.Style
	SidebarSelected lipgloss.Style
	SidebarDesc     lipgloss.Style

	// Inspector
	Inspector      lipgloss.Style
	InspectorTitle lipgloss.Style

	// Search prompt
	SearchPrompt lipgloss.Style

	// Help line
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// General styles
	Subtle lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles creates a Styles configuration from a theme
func NewStyles(theme config.Theme) Styles {
	ui := theme.UI

	return Styles{
		Theme: theme,

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.StatusFg)),

		StatusAccent: lipgloss.NewStyle().
			Background(lipgloss.Color(ui.StatusBg)).
			Foreground(lipgloss.Color(ui.StatusAccent)).
			Bold(true),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color(ui.MinimapBorder)).
			PaddingRight(1),

		SidebarTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.StatusAccent)).
			Bold(true),

		SidebarItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.SidebarFg)).
			PaddingLeft(1),

		SidebarSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(ui.NodeSelected)).
			Foreground(lipgloss.Color(ui.NodeSelected)).
			Bold(true),

		SidebarDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.HelpFg)).
			PaddingLeft(1),

		Inspector: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ui.NodeBorder)).
			Padding(0, 1),

		InspectorTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.NodeTitle)).
			Bold(true),

		SearchPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.StatusAccent)).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.SidebarMatch)),

		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.HelpFg)),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.HelpFg)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.ErrorFg)).
			Bold(true),
	}
}

// DefaultStyles returns the styles of the default theme
func DefaultStyles() Styles {
	return NewStyles(config.DefaultTheme())
}
