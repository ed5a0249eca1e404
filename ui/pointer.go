package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cornish/nodemap/drag"
)

// CellToDots maps a cell to the dot at its center.
func CellToDots(x, y int) (float64, float64) {
	return float64(x*DotsPerCellX + DotsPerCellX/2), float64(y*DotsPerCellY + DotsPerCellY/2)
}

// PointerEvent is a mouse message positioned in canvas dots. Handlers
// that consume it call StopPropagation so the canvas ignores it.
type PointerEvent struct {
	Msg       tea.MouseMsg
	X         float64
	Y         float64
	stopped   bool
	prevented bool
}

// NewPointerEvent positions msg relative to a canvas whose top-left
// cell is (originX, originY) on screen.
func NewPointerEvent(msg tea.MouseMsg, originX, originY int) *PointerEvent {
	x, y := CellToDots(msg.X-originX, msg.Y-originY)
	return &PointerEvent{Msg: msg, X: x, Y: y}
}

func (e *PointerEvent) StopPropagation() { e.stopped = true }
func (e *PointerEvent) PreventDefault()  { e.prevented = true }

// Stopped reports whether a handler consumed the event.
func (e *PointerEvent) Stopped() bool { return e.stopped }

// Prevented reports whether a handler suppressed the default action.
func (e *PointerEvent) Prevented() bool { return e.prevented }

// PointerPosition extracts the dot position of e.
func PointerPosition(e *PointerEvent) drag.Position {
	return drag.Position{X: e.X, Y: e.Y}
}

// DragEvent maps a mouse action to a drag surface event. Presses are not
// surface events; they start drags.
func DragEvent(msg tea.MouseMsg) (drag.EventType, bool) {
	switch msg.Action {
	case tea.MouseActionMotion:
		return drag.EventMove, true
	case tea.MouseActionRelease:
		return drag.EventUp, true
	}
	return 0, false
}

// ClickTracker turns left presses into double-clicks. Terminals report
// only presses and releases, so a second press in the same cell within
// the interval counts as a double-click.
type ClickTracker struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
	x, y     int
	armed    bool
}

// NewClickTracker creates a tracker with the given interval.
func NewClickTracker(interval time.Duration) *ClickTracker {
	return &ClickTracker{interval: interval, now: time.Now}
}

// SetInterval changes the double-click interval.
func (c *ClickTracker) SetInterval(d time.Duration) {
	c.interval = d
}

// Press records a press at cell (x, y) and reports whether it completes
// a double-click. A third press starts over.
func (c *ClickTracker) Press(x, y int) bool {
	t := c.now()
	double := c.armed && x == c.x && y == c.y && t.Sub(c.last) <= c.interval
	c.armed = !double
	c.last, c.x, c.y = t, x, y
	return double
}

// Reset forgets the last press.
func (c *ClickTracker) Reset() {
	c.armed = false
}
