// Package drag turns pointer-down, move, up gestures into incremental
// position deltas.
package drag

// EventType identifies an event kind on a pointer Surface.
type EventType int

const (
	EventMove   EventType = iota // pointer moved
	EventUp                      // button released
	EventCancel                  // gesture aborted (focus lost, escape)
)

// String returns the event name for logging.
func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventUp:
		return "up"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

type listener[E any] struct {
	id uint32
	fn func(E)
}

// Surface is the program-wide pointer event source. The application
// dispatches every pointer event to it, wherever the pointer is, so a
// listener keeps receiving moves after the pointer leaves the element
// that started the gesture.
type Surface[E any] struct {
	move   []listener[E]
	up     []listener[E]
	cancel []listener[E]
	nextID uint32
}

// NewSurface creates an empty pointer surface.
func NewSurface[E any]() *Surface[E] {
	return &Surface[E]{}
}

// Handle removes a listener registered with Surface.On.
type Handle[E any] struct {
	id      uint32
	surface *Surface[E]
	event   EventType
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h Handle[E]) Remove() {
	if h.surface == nil {
		return
	}
	list := h.surface.listeners(h.event)
	if list == nil {
		return
	}
	for i := range *list {
		if (*list)[i].id == h.id {
			copy((*list)[i:], (*list)[i+1:])
			(*list)[len(*list)-1] = listener[E]{}
			*list = (*list)[:len(*list)-1]
			return
		}
	}
}

// On registers fn for the given event type.
func (s *Surface[E]) On(event EventType, fn func(E)) Handle[E] {
	list := s.listeners(event)
	if list == nil || fn == nil {
		return Handle[E]{}
	}
	s.nextID++
	*list = append(*list, listener[E]{id: s.nextID, fn: fn})
	return Handle[E]{id: s.nextID, surface: s, event: event}
}

// Dispatch delivers e to every listener of the event type, in
// registration order. Listeners may remove themselves while running.
func (s *Surface[E]) Dispatch(event EventType, e E) {
	list := s.listeners(event)
	if list == nil || len(*list) == 0 {
		return
	}
	snapshot := make([]listener[E], len(*list))
	copy(snapshot, *list)
	for _, l := range snapshot {
		if !s.registered(event, l.id) {
			continue
		}
		l.fn(e)
	}
}

// Listeners reports how many listeners are registered for the event type.
func (s *Surface[E]) Listeners(event EventType) int {
	list := s.listeners(event)
	if list == nil {
		return 0
	}
	return len(*list)
}

func (s *Surface[E]) registered(event EventType, id uint32) bool {
	for _, l := range *s.listeners(event) {
		if l.id == id {
			return true
		}
	}
	return false
}

func (s *Surface[E]) listeners(event EventType) *[]listener[E] {
	switch event {
	case EventMove:
		return &s.move
	case EventUp:
		return &s.up
	case EventCancel:
		return &s.cancel
	default:
		return nil
	}
}
