package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceDispatchOrder(t *testing.T) {
	s := NewSurface[int]()
	var got []string
	s.On(EventMove, func(int) { got = append(got, "a") })
	s.On(EventMove, func(int) { got = append(got, "b") })
	s.On(EventUp, func(int) { got = append(got, "up") })

	s.Dispatch(EventMove, 0)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSurfaceRemoveDuringDispatch(t *testing.T) {
	s := NewSurface[int]()
	calls := 0
	var second Handle[int]
	s.On(EventUp, func(int) {
		calls++
		second.Remove()
	})
	second = s.On(EventUp, func(int) { calls += 10 })

	s.Dispatch(EventUp, 0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, s.Listeners(EventUp))
}

func TestHandleRemoveIsIdempotent(t *testing.T) {
	s := NewSurface[int]()
	h := s.On(EventCancel, func(int) {})
	h.Remove()
	h.Remove()
	Handle[int]{}.Remove()
	assert.Zero(t, s.Listeners(EventCancel))
}

func TestSurfaceUnknownEvent(t *testing.T) {
	s := NewSurface[int]()
	h := s.On(EventType(42), func(int) {})
	h.Remove()
	s.Dispatch(EventType(42), 1)
	assert.Zero(t, s.Listeners(EventType(42)))
	assert.Equal(t, "unknown", EventType(42).String())
}
