// Package syntax colors structured text (node properties rendered as
// TOML) for the inspector panel.
package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Colors holds the theme colors for each token class
type Colors struct {
	Keyword string
	String  string
	Comment string
	Number  string
	Name    string
}

// DefaultColors returns the fallback palette
func DefaultColors() Colors {
	return Colors{
		Keyword: "14", // Bright cyan
		String:  "10", // Bright green
		Comment: "8",  // Gray
		Number:  "11", // Bright yellow
		Name:    "12", // Bright blue
	}
}

// ColorSpan represents a colored region of a line
type ColorSpan struct {
	Start int    // Start column (rune index)
	End   int    // End column (rune index, exclusive)
	Color string // ANSI escape sequence
}

// Highlighter colors text in one language
type Highlighter struct {
	lexer  chroma.Lexer
	colors Colors
}

// New creates a highlighter for a chroma language name such as "toml".
// Unknown languages pass text through uncolored.
func New(language string, colors Colors) *Highlighter {
	h := &Highlighter{colors: colors}
	if l := lexers.Get(language); l != nil {
		h.lexer = chroma.Coalesce(l)
	}
	return h
}

// HasLexer returns true if the language was recognized
func (h *Highlighter) HasLexer() bool {
	return h.lexer != nil
}

// SetColors sets the highlighting colors
func (h *Highlighter) SetColors(colors Colors) {
	h.colors = colors
}

// Spans returns color spans for one line
func (h *Highlighter) Spans(line string) []ColorSpan {
	if h.lexer == nil {
		return nil
	}
	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return nil
	}

	var spans []ColorSpan
	pos := 0
	for _, token := range iterator.Tokens() {
		n := utf8.RuneCountInString(token.Value)
		if color := h.tokenColor(token.Type); color != "" && n > 0 {
			spans = append(spans, ColorSpan{Start: pos, End: pos + n, Color: color})
		}
		pos += n
	}
	return spans
}

// Render colors text line by line. Each colored token is followed by a
// reset so lines can be cut or padded safely.
func (h *Highlighter) Render(text string) string {
	if h.lexer == nil {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = applySpans(line, h.Spans(line))
	}
	return strings.Join(lines, "\n")
}

func applySpans(line string, spans []ColorSpan) string {
	if len(spans) == 0 {
		return line
	}
	runes := []rune(line)
	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.Start > len(runes) {
			break
		}
		end := min(s.End, len(runes))
		b.WriteString(string(runes[pos:s.Start]))
		b.WriteString(s.Color)
		b.WriteString(string(runes[s.Start:end]))
		b.WriteString("\033[0m")
		pos = end
	}
	b.WriteString(string(runes[pos:]))
	return b.String()
}

// ColorAt returns the color for a specific column position
// Returns empty string if no color applies
func ColorAt(spans []ColorSpan, col int) string {
	for _, span := range spans {
		if col >= span.Start && col < span.End {
			return span.Color
		}
	}
	return ""
}

// ColorToANSI converts a theme color string to an ANSI foreground escape sequence
func ColorToANSI(color string) string {
	if strings.HasPrefix(color, "#") {
		r, g, b := parseHexColor(color)
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	n, err := strconv.Atoi(color)
	if err != nil {
		return "\033[37m" // Default to white on error
	}
	if n < 16 {
		if n < 8 {
			return fmt.Sprintf("\033[%dm", 30+n)
		}
		return fmt.Sprintf("\033[%dm", 90+(n-8))
	}
	return fmt.Sprintf("\033[38;5;%dm", n)
}

// parseHexColor parses #RGB or #RRGGBB to r, g, b values
func parseHexColor(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 255, 255, 255 // Default to white on error
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

// tokenColor returns the ANSI color code for a token type
func (h *Highlighter) tokenColor(t chroma.TokenType) string {
	switch {
	case t.InCategory(chroma.Keyword):
		return ColorToANSI(h.colors.Keyword)
	case t.InSubCategory(chroma.LiteralString):
		return ColorToANSI(h.colors.String)
	case t.InSubCategory(chroma.LiteralNumber), t == chroma.NameConstant:
		return ColorToANSI(h.colors.Number)
	case t.InCategory(chroma.Comment):
		return ColorToANSI(h.colors.Comment)
	case t.InCategory(chroma.Name), t == chroma.GenericHeading, t == chroma.GenericSubheading:
		return ColorToANSI(h.colors.Name)
	default:
		return "" // Default terminal color
	}
}
