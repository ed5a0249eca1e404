package config

import (
	"os"
	"strings"
)

// ColorMode represents the terminal color capability
type ColorMode int

const (
	Color16        ColorMode = iota // Basic 16 colors
	Color256                        // 256 color palette
	ColorTrueColor                  // 24-bit true color
)

// TermCapabilities holds detected terminal capabilities
type TermCapabilities struct {
	UTF8Support bool      // Terminal can draw braille and box glyphs
	ColorMode   ColorMode // Color capability level
}

// String returns a human-readable description of the color mode
func (c ColorMode) String() string {
	switch c {
	case Color16:
		return "16 colors"
	case Color256:
		return "256 colors"
	case ColorTrueColor:
		return "TrueColor (24-bit)"
	default:
		return "unknown"
	}
}

// DetectCapabilities detects terminal capabilities from environment variables
func DetectCapabilities() *TermCapabilities {
	return detectCapabilities(os.Getenv)
}

func detectCapabilities(getenv func(string) string) *TermCapabilities {
	return &TermCapabilities{
		UTF8Support: detectUTF8Support(getenv),
		ColorMode:   detectColorMode(getenv),
	}
}

// detectUTF8Support checks LC_ALL, LC_CTYPE and LANG in priority order.
// The first one set decides.
func detectUTF8Support(getenv func(string) string) bool {
	for _, envVar := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := strings.ToUpper(getenv(envVar))
		if val != "" {
			return strings.Contains(val, "UTF-8") || strings.Contains(val, "UTF8")
		}
	}
	return false
}

// detectColorMode detects the terminal's color capability
func detectColorMode(getenv func(string) string) ColorMode {
	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTrueColor
	}

	term := strings.ToLower(getenv("TERM"))
	for _, t := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(term, t) {
			return ColorTrueColor
		}
	}
	if strings.Contains(term, "256color") || strings.Contains(term, "256-color") {
		return Color256
	}

	// Default to 16 colors for safety
	return Color16
}

// ShouldUseASCII returns true if ASCII mode should be used based on capabilities
// Takes into account both auto-detection and user override
func (c *TermCapabilities) ShouldUseASCII(override *bool) bool {
	if override != nil {
		return *override
	}
	return !c.UTF8Support
}

// ShouldUseTrueColor returns true if TrueColor should be used based on capabilities
// Takes into account both auto-detection and user override
func (c *TermCapabilities) ShouldUseTrueColor(override *bool) bool {
	if override != nil {
		return *override
	}
	return c.ColorMode == ColorTrueColor
}
