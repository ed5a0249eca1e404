package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// StatusBar is the bottom line: document name, node counts, camera and
// a transient message.
type StatusBar struct {
	name        string
	encoding    string
	zoom        float64
	camX        float64
	camY        float64
	visible     int
	total       int
	message     string
	messageType string // "info", "error"
	width       int
	styles      Styles
}

// NewStatusBar creates a status bar at zoom 1.
func NewStatusBar(styles Styles) *StatusBar {
	return &StatusBar{
		zoom:     1,
		encoding: "UTF-8",
		styles:   styles,
	}
}

// SetName sets the document name.
func (s *StatusBar) SetName(name string) {
	s.name = name
}

// SetEncoding sets the detected file encoding.
func (s *StatusBar) SetEncoding(encoding string) {
	s.encoding = encoding
}

// SetCamera sets the zoom and the camera translation in dots.
func (s *StatusBar) SetCamera(zoom, x, y float64) {
	s.zoom, s.camX, s.camY = zoom, x, y
}

// SetCounts sets how many nodes were drawn out of the total.
func (s *StatusBar) SetCounts(visible, total int) {
	s.visible, s.total = visible, total
}

// SetMessage sets a temporary message.
func (s *StatusBar) SetMessage(message, msgType string) {
	s.message = message
	s.messageType = msgType
}

// ClearMessage clears the temporary message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.messageType = ""
}

// Message returns the current message.
func (s *StatusBar) Message() string {
	return s.message
}

// SetWidth sets the width in cells.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetStyles updates the styles for runtime theme changes.
func (s *StatusBar) SetStyles(styles Styles) {
	s.styles = styles
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var sb strings.Builder

	ui := s.styles.Theme.UI
	normalColor := ColorToANSI(ui.StatusFg, ui.StatusBg)
	accentColor := ColorToANSIFg(ui.StatusAccent) + "\033[1m"
	errorColor := ColorToANSIFg(ui.ErrorFg) + "\033[1m"
	resetToNormal := ColorToANSIFg(ui.StatusFg) + "\033[22m"

	sb.WriteString(normalColor)

	name := s.name
	if name == "" {
		name = "[Untitled]"
	}
	right := fmt.Sprintf("%d/%d nodes | %3.0f%% | %.0f,%.0f | %s",
		s.visible, s.total, s.zoom*100, s.camX, s.camY, s.encoding)

	rightLen := runewidth.StringWidth(right)
	name = runewidth.Truncate(name, max(s.width-rightLen-1, 1), "…")
	leftLen := runewidth.StringWidth(name)
	sb.WriteString(accentColor + name + resetToNormal)

	available := max(s.width-leftLen-rightLen, 0)
	msgLen := runewidth.StringWidth(s.message)
	if s.message != "" && msgLen+4 <= available {
		leftPad := (available - msgLen) / 2
		sb.WriteString(strings.Repeat(" ", leftPad))
		if s.messageType == "error" {
			sb.WriteString(errorColor + s.message + resetToNormal)
		} else {
			sb.WriteString(s.message)
		}
		sb.WriteString(strings.Repeat(" ", available-msgLen-leftPad))
	} else {
		sb.WriteString(strings.Repeat(" ", available))
	}

	sb.WriteString(right)
	sb.WriteString("\033[0m")
	return sb.String()
}
