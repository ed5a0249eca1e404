package area

import (
	"time"

	"github.com/cornish/nodemap/minimap"
)

// HistoryEntry is a camera position worth returning to.
type HistoryEntry struct {
	Transform minimap.Transform
	// Timestamp of the jump away from this position (for grouping).
	Timestamp time.Time
}

// History keeps back and forward stacks of camera positions. Jumps made
// in quick succession collapse into one entry so a burst of wheel zooms
// or minimap drags goes back in one step.
type History struct {
	back    []HistoryEntry
	forward []HistoryEntry
	maxSize int
	// Grouping: jumps within this duration of the previous one are not
	// recorded separately
	groupingInterval time.Duration
	lastPush         time.Time
	now              func() time.Time
}

// NewHistory creates a history holding at most maxSize back entries.
func NewHistory(maxSize int) *History {
	if maxSize < 1 {
		maxSize = 1
	}
	return &History{
		back:             make([]HistoryEntry, 0, maxSize),
		maxSize:          maxSize,
		groupingInterval: 500 * time.Millisecond,
		now:              time.Now,
	}
}

// Push records the position the camera is leaving.
// This clears the forward stack since we're taking a new path.
func (h *History) Push(t minimap.Transform) {
	now := h.now()
	if h.shouldMerge(now) {
		h.back[len(h.back)-1].Timestamp = now
	} else {
		h.back = append(h.back, HistoryEntry{Transform: t, Timestamp: now})
		if len(h.back) > h.maxSize {
			h.back = h.back[1:]
		}
	}
	h.forward = h.forward[:0]
	h.lastPush = now
}

// shouldMerge keeps the oldest position of a burst.
func (h *History) shouldMerge(now time.Time) bool {
	if len(h.back) == 0 || h.lastPush.IsZero() {
		return false
	}
	return now.Sub(h.lastPush) <= h.groupingInterval
}

// Back returns the previous position and remembers current for Forward.
func (h *History) Back(current minimap.Transform) (minimap.Transform, bool) {
	if len(h.back) == 0 {
		return current, false
	}
	e := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, HistoryEntry{Transform: current, Timestamp: h.now()})
	h.BreakMerge()
	return e.Transform, true
}

// Forward undoes a Back.
func (h *History) Forward(current minimap.Transform) (minimap.Transform, bool) {
	if len(h.forward) == 0 {
		return current, false
	}
	e := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, HistoryEntry{Transform: current, Timestamp: h.now()})
	h.BreakMerge()
	return e.Transform, true
}

// CanBack returns true if there are positions to go back to.
func (h *History) CanBack() bool {
	return len(h.back) > 0
}

// CanForward returns true if Back was used and nothing was pushed since.
func (h *History) CanForward() bool {
	return len(h.forward) > 0
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.back = h.back[:0]
	h.forward = h.forward[:0]
	h.lastPush = time.Time{}
}

// BreakMerge forces the next push to be recorded separately.
func (h *History) BreakMerge() {
	h.lastPush = time.Time{}
}

// SetGroupingInterval sets the interval for grouping jumps.
func (h *History) SetGroupingInterval(d time.Duration) {
	h.groupingInterval = d
}
