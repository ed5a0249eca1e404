package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pointerEvent struct {
	pageX float64
	pageY float64
}

func pagePosition(e pointerEvent) Position {
	return Position{X: e.pageX, Y: e.pageY}
}

type recorder struct {
	deltas [][2]float64
	ends   int
}

func (r *recorder) delta(dx, dy float64) {
	r.deltas = append(r.deltas, [2]float64{dx, dy})
}

func newTestController() (*Surface[pointerEvent], *Controller[pointerEvent], *recorder) {
	s := NewSurface[pointerEvent]()
	rec := &recorder{}
	c := New(s, pagePosition, rec.delta).OnEnd(func() { rec.ends++ })
	return s, c, rec
}

func TestControllerEmitsIncrementalDeltas(t *testing.T) {
	s, c, rec := newTestController()

	c.Start(pointerEvent{100, 100})
	s.Dispatch(EventMove, pointerEvent{130, 90})
	s.Dispatch(EventMove, pointerEvent{125, 95})

	require.Len(t, rec.deltas, 2)
	assert.Equal(t, [2]float64{30, -10}, rec.deltas[0])
	assert.Equal(t, [2]float64{-5, 5}, rec.deltas[1])
}

func TestControllerIgnoresMovesWithoutSession(t *testing.T) {
	s, c, rec := newTestController()

	s.Dispatch(EventMove, pointerEvent{10, 10})
	assert.Empty(t, rec.deltas)
	assert.False(t, c.Active())
	assert.Zero(t, s.Listeners(EventMove))
}

func TestControllerStopsAfterUp(t *testing.T) {
	s, c, rec := newTestController()

	c.Start(pointerEvent{0, 0})
	s.Dispatch(EventMove, pointerEvent{5, 5})
	s.Dispatch(EventUp, pointerEvent{5, 5})
	s.Dispatch(EventMove, pointerEvent{50, 50})

	assert.Len(t, rec.deltas, 1)
	assert.False(t, c.Active())
	assert.Equal(t, 1, rec.ends)
	for _, ev := range []EventType{EventMove, EventUp, EventCancel} {
		assert.Zero(t, s.Listeners(ev), "listeners left for %s", ev)
	}
}

func TestControllerStopsAfterCancel(t *testing.T) {
	s, c, rec := newTestController()

	c.Start(pointerEvent{0, 0})
	s.Dispatch(EventCancel, pointerEvent{})
	s.Dispatch(EventMove, pointerEvent{3, 3})

	assert.Empty(t, rec.deltas)
	assert.False(t, c.Active())
}

func TestControllerRestartResetsReferencePoint(t *testing.T) {
	s, c, rec := newTestController()

	c.Start(pointerEvent{0, 0})
	s.Dispatch(EventMove, pointerEvent{10, 10})
	c.Start(pointerEvent{200, 200})
	s.Dispatch(EventMove, pointerEvent{201, 198})

	require.Len(t, rec.deltas, 2)
	assert.Equal(t, [2]float64{1, -2}, rec.deltas[1])
	assert.Equal(t, 1, s.Listeners(EventMove), "restart must not register twice")
}

func TestControllerNewSessionHasNoLingeringDeltas(t *testing.T) {
	s, c, rec := newTestController()

	c.Start(pointerEvent{0, 0})
	s.Dispatch(EventMove, pointerEvent{40, 40})
	s.Dispatch(EventUp, pointerEvent{40, 40})

	c.Start(pointerEvent{500, 500})
	s.Dispatch(EventMove, pointerEvent{502, 503})

	require.Len(t, rec.deltas, 2)
	assert.Equal(t, [2]float64{2, 3}, rec.deltas[1])
}

func TestControllerEndTwiceIsNoop(t *testing.T) {
	_, c, rec := newTestController()

	c.End()
	c.Start(pointerEvent{1, 1})
	c.End()
	c.End()
	assert.Equal(t, 1, rec.ends)
}

func TestControllersDoNotShareState(t *testing.T) {
	s := NewSurface[pointerEvent]()
	a := &recorder{}
	b := &recorder{}
	ca := New(s, pagePosition, a.delta)
	cb := New(s, pagePosition, b.delta)

	ca.Start(pointerEvent{0, 0})
	s.Dispatch(EventMove, pointerEvent{1, 1})
	assert.Len(t, a.deltas, 1)
	assert.Empty(t, b.deltas)
	assert.False(t, cb.Active())
}
