// Package mediator relays parts requests between nearby mechanics.
package mediator

import "math"

// CloseDistance is the radius within which mechanics hear each other.
const CloseDistance = 50.0

type Part struct {
	Name  string
	Price float64
}

type Request struct {
	Message  string
	Parts    []Part
	Mechanic *Mechanic
}

type Mediator interface {
	Send(Request)
}

type Location struct {
	X, Y float64
}

func (l Location) DistanceTo(o Location) float64 {
	return math.Hypot(l.X-o.X, l.Y-o.Y)
}

// Mechanic talks to colleagues only through its mediator.
type Mechanic struct {
	Name     string
	Location Location
	Received []Request

	mediator Mediator
}

func NewMechanic(name string, at Location, m Mediator) *Mechanic {
	return &Mechanic{Name: name, Location: at, mediator: m}
}

func (m *Mechanic) IsCloseTo(other *Mechanic, within float64) bool {
	return m.Location.DistanceTo(other.Location) <= within
}

// Send asks the mediator to deliver message, with optional parts.
func (m *Mechanic) Send(message string, parts ...Part) {
	if m.mediator == nil {
		return
	}
	m.mediator.Send(Request{Message: message, Parts: parts, Mechanic: m})
}

func (m *Mechanic) Receive(r Request) {
	m.Received = append(m.Received, r)
}

// RequestMediator delivers each request to every other registered mechanic
// within CloseDistance of the sender. Requests without a sender are dropped.
type RequestMediator struct {
	mechanics []*Mechanic
}

func (rm *RequestMediator) AddMechanic(m *Mechanic) {
	rm.mechanics = append(rm.mechanics, m)
}

func (rm *RequestMediator) Send(r Request) {
	if r.Mechanic == nil {
		return
	}
	for _, m := range rm.mechanics {
		if m != r.Mechanic && r.Mechanic.IsCloseTo(m, CloseDistance) {
			m.Receive(r)
		}
	}
}
