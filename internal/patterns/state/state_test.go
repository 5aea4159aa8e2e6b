package state

import (
	"strings"
	"testing"
)

func TestContextLifecycle(t *testing.T) {
	c := NewContext()
	if _, ok := c.State().(Submitted); !ok {
		t.Fatalf("initial state = %T, want Submitted", c.State())
	}
	if _, ok := c.Price(); ok {
		t.Error("submitted quote has a price")
	}

	c.ChangeToPending()
	if !strings.Contains(c.MessageToCustomer(), "being prepared") {
		t.Errorf("pending message = %q", c.MessageToCustomer())
	}

	c.ChangeToReady(66.25)
	if p, ok := c.Price(); !ok || p != 66.25 {
		t.Errorf("Price() = %v, %v, want 66.25", p, ok)
	}
	if _, ok := c.Receipt(); ok {
		t.Error("ready quote has a receipt")
	}

	joe := Mechanic{Name: "Joe Murphy"}
	c.ChangeToBooked(66.25, joe)
	if m, ok := c.AssignedMechanic(); !ok || m != joe {
		t.Errorf("AssignedMechanic() = %v, %v", m, ok)
	}
	if !strings.Contains(c.MessageToCustomer(), "Joe Murphy") {
		t.Errorf("booked message = %q", c.MessageToCustomer())
	}

	receipt := Receipt{Delivered: true, Total: 66.25, CustomerName: "John Lee"}
	c.ChangeToCompleted(66.25, joe, receipt)
	if r, ok := c.Receipt(); !ok || r != receipt {
		t.Errorf("Receipt() = %v, %v", r, ok)
	}
	if !strings.Contains(c.MessageToCustomer(), "$66.25") {
		t.Errorf("completed message = %q", c.MessageToCustomer())
	}
}

func TestStatesAnswer(t *testing.T) {
	m := Mechanic{Name: "M"}
	tests := []struct {
		state       State
		hasPrice    bool
		hasMechanic bool
		hasReceipt  bool
	}{
		{Submitted{}, false, false, false},
		{Pending{}, false, false, false},
		{Ready{price: 1}, true, false, false},
		{Booked{price: 1, mechanic: m}, true, true, false},
		{Completed{price: 1, mechanic: m}, true, true, true},
	}
	for _, tt := range tests {
		_, p := tt.state.Price()
		_, mech := tt.state.AssignedMechanic()
		_, r := tt.state.Receipt()
		if p != tt.hasPrice || mech != tt.hasMechanic || r != tt.hasReceipt {
			t.Errorf("%T: price=%v mechanic=%v receipt=%v", tt.state, p, mech, r)
		}
		if tt.state.MessageToCustomer() == "" {
			t.Errorf("%T: empty message", tt.state)
		}
	}
}
