package tui

// Signal is a synchronous, single-threaded broadcast channel carrying a value
// of type T. Connect returns a Subscription; once it is disconnected the slot
// never fires again, even if the disconnect happens in the middle of an
// emission.
//
// Signals are not safe for concurrent use. The component tree they belong to
// is owned by a single goroutine.
type Signal[T any] struct {
	slots []*slot[T]
}

type slot[T any] struct {
	fn     func(T)
	active bool
}

// Connect registers fn and returns the handle that releases it.
func (s *Signal[T]) Connect(fn func(T)) Subscription {
	sl := &slot[T]{fn: fn, active: true}
	s.slots = append(s.slots, sl)
	return Subscription{release: func() {
		if !sl.active {
			return
		}
		sl.active = false
		s.compact()
	}}
}

// Emit calls every connected slot with v, in connection order. Slots
// connected during the emission are not called until the next Emit.
func (s *Signal[T]) Emit(v T) {
	snapshot := s.slots
	for _, sl := range snapshot {
		if sl.active {
			sl.fn(v)
		}
	}
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// compact drops inactive slots into a fresh slice so a snapshot held by an
// in-progress Emit is never rewritten underneath it.
func (s *Signal[T]) compact() {
	live := make([]*slot[T], 0, len(s.slots))
	for _, sl := range s.slots {
		if sl.active {
			live = append(live, sl)
		}
	}
	s.slots = live
}

// Notifier is a Signal with no payload.
type Notifier struct {
	sig Signal[struct{}]
}

// Connect registers fn and returns the handle that releases it.
func (n *Notifier) Connect(fn func()) Subscription {
	return n.sig.Connect(func(struct{}) { fn() })
}

// Notify calls every connected slot.
func (n *Notifier) Notify() {
	n.sig.Emit(struct{}{})
}

// Len returns the number of connected slots.
func (n *Notifier) Len() int {
	return n.sig.Len()
}

// Subscription is the handle returned by Connect. The zero value is a valid
// subscription that is already disconnected.
type Subscription struct {
	release func()
}

// Disconnect releases the slot. It is safe to call more than once.
func (s Subscription) Disconnect() {
	if s.release != nil {
		s.release()
	}
}

// Subscriptions is a set of handles released together.
type Subscriptions []Subscription

// DisconnectAll releases every handle in the set.
func (ss Subscriptions) DisconnectAll() {
	for _, s := range ss {
		s.Disconnect()
	}
}
