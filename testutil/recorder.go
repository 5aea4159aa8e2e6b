// Package testutil provides helpers shared by store tests.
package testutil

import "github.com/comalice/storex"

// Transition is one recorded subscriber call.
type Transition[S, C any] struct {
	State    S
	Previous S
	Command  C
}

// Recorder captures every transition it is subscribed to.
type Recorder[S, C any] struct {
	transitions []Transition[S, C]
}

// Subscriber returns a subscriber that appends to r.
func (r *Recorder[S, C]) Subscriber() storex.Subscriber[S, C] {
	return func(state, previous S, command C) {
		r.transitions = append(r.transitions, Transition[S, C]{State: state, Previous: previous, Command: command})
	}
}

func (r *Recorder[S, C]) Len() int {
	return len(r.transitions)
}

// Transitions returns the recorded transitions, oldest first.
func (r *Recorder[S, C]) Transitions() []Transition[S, C] {
	return append([]Transition[S, C](nil), r.transitions...)
}

// Last returns the most recent transition. ok is false if none was recorded.
func (r *Recorder[S, C]) Last() (t Transition[S, C], ok bool) {
	if len(r.transitions) == 0 {
		return t, false
	}
	return r.transitions[len(r.transitions)-1], true
}

func (r *Recorder[S, C]) Reset() {
	r.transitions = nil
}
