package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/cornish/nodemap/drag"
)

func TestCellToDots(t *testing.T) {
	x, y := CellToDots(3, 2)
	assert.Equal(t, 7.0, x)
	assert.Equal(t, 10.0, y)
}

func TestPointerEvent(t *testing.T) {
	msg := tea.MouseMsg{X: 12, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	e := NewPointerEvent(msg, 10, 1)
	assert.Equal(t, drag.Position{X: 5, Y: 10}, PointerPosition(e))
	assert.False(t, e.Stopped())

	e.StopPropagation()
	e.PreventDefault()
	assert.True(t, e.Stopped())
	assert.True(t, e.Prevented())
}

func TestDragEvent(t *testing.T) {
	tests := []struct {
		action tea.MouseAction
		want   drag.EventType
		ok     bool
	}{
		{tea.MouseActionMotion, drag.EventMove, true},
		{tea.MouseActionRelease, drag.EventUp, true},
		{tea.MouseActionPress, 0, false},
	}
	for _, tt := range tests {
		got, ok := DragEvent(tea.MouseMsg{Action: tt.action})
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestClickTracker(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewClickTracker(400 * time.Millisecond)
	c.now = func() time.Time { return now }
	step := func(d time.Duration) { now = now.Add(d) }

	assert.False(t, c.Press(1, 1))
	step(100 * time.Millisecond)
	assert.True(t, c.Press(1, 1), "second press in the same cell")

	step(100 * time.Millisecond)
	assert.False(t, c.Press(1, 1), "third press starts over")

	step(100 * time.Millisecond)
	assert.False(t, c.Press(2, 1), "different cell")

	step(500 * time.Millisecond)
	assert.False(t, c.Press(2, 1), "too slow")

	c.Reset()
	step(10 * time.Millisecond)
	assert.False(t, c.Press(2, 1))
	step(10 * time.Millisecond)
	c.SetInterval(5 * time.Millisecond)
	assert.False(t, c.Press(2, 1))
}
