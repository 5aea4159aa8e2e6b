// Package storex provides a minimal unidirectional-data-flow state container.
//
// A Store holds one state value and a pure Reducer. Dispatching an action runs
// the reducer, replaces the state with its result and hands the transition,
// together with the optional command the reducer produced, to the single
// registered Subscriber.
//
// The core is stdlib-only and performs no I/O. Side effects named by commands
// are executed by the subscriber, which feeds results back in through Dispatch.
package storex

// Reducer computes the next state and an optional command from the current
// state and an action. It must be pure: no I/O, no mutation of its inputs.
//
// Command types are usually sealed interfaces; the nil value means "no command".
type Reducer[A, S, C any] func(state S, action A) (S, C)

// Subscriber observes one transition. It runs synchronously inside Dispatch,
// after the new state is in place.
type Subscriber[S, C any] func(state, previous S, command C)

// Option configures a Store at construction.
type Option[A, S, C any] func(*Store[A, S, C])

// WithSubscriber registers handler as the Store's subscriber.
func WithSubscriber[A, S, C any](handler Subscriber[S, C]) Option[A, S, C] {
	return func(s *Store[A, S, C]) {
		s.subscriber = handler
	}
}

// Store is the single source of truth for one piece of state.
//
// A Store is not safe for concurrent use. All calls are expected on one
// goroutine; see internal/runloop for serialising work from others.
type Store[A, S, C any] struct {
	reducer    Reducer[A, S, C]
	subscriber Subscriber[S, C]
	state      S
}

// New creates a Store with the given reducer and initial state.
func New[A, S, C any](reducer Reducer[A, S, C], initial S, opts ...Option[A, S, C]) *Store[A, S, C] {
	if reducer == nil {
		panic("storex: nil reducer")
	}
	s := &Store[A, S, C]{
		reducer: reducer,
		state:   initial,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch runs the reducer on the current state and action, replaces the
// state with the result and notifies the subscriber, if any.
//
// A Dispatch issued from inside the subscriber completes, including its own
// notification, before the outer call returns.
func (s *Store[A, S, C]) Dispatch(action A) {
	previous := s.state
	next, command := s.reducer(s.state, action)
	s.state = next
	if s.subscriber != nil {
		s.subscriber(next, previous, command)
	}
}

// Subscribe makes handler the sole observer of future dispatches,
// replacing any earlier one. Past transitions are not replayed.
func (s *Store[A, S, C]) Subscribe(handler Subscriber[S, C]) {
	s.subscriber = handler
}

// Unsubscribe clears the subscriber. Later dispatches still update the state.
func (s *Store[A, S, C]) Unsubscribe() {
	s.subscriber = nil
}

// State returns the current state. Callers must treat it as read-only.
func (s *Store[A, S, C]) State() S {
	return s.state
}
