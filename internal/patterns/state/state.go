// Package state models a service quote whose behaviour depends on how far
// along it is.
package state

import "fmt"

type Mechanic struct {
	Name string
}

type Receipt struct {
	Delivered    bool
	Total        float64
	CustomerName string
}

// State answers questions about a quote at one stage of its life.
type State interface {
	Price() (float64, bool)
	MessageToCustomer() string
	AssignedMechanic() (Mechanic, bool)
	Receipt() (Receipt, bool)
}

// Context holds the current State and delegates to it.
type Context struct {
	state State
}

// NewContext starts in the submitted state.
func NewContext() *Context {
	return &Context{state: Submitted{}}
}

func (c *Context) State() State { return c.state }

func (c *Context) MessageToCustomer() string          { return c.state.MessageToCustomer() }
func (c *Context) Price() (float64, bool)             { return c.state.Price() }
func (c *Context) AssignedMechanic() (Mechanic, bool) { return c.state.AssignedMechanic() }
func (c *Context) Receipt() (Receipt, bool)           { return c.state.Receipt() }

func (c *Context) ChangeToPending() { c.state = Pending{} }

func (c *Context) ChangeToReady(price float64) { c.state = Ready{price: price} }

func (c *Context) ChangeToBooked(price float64, m Mechanic) {
	c.state = Booked{price: price, mechanic: m}
}

func (c *Context) ChangeToCompleted(price float64, m Mechanic, r Receipt) {
	c.state = Completed{price: price, mechanic: m, receipt: r}
}

type Submitted struct{}

func (Submitted) Price() (float64, bool)             { return 0, false }
func (Submitted) AssignedMechanic() (Mechanic, bool) { return Mechanic{}, false }
func (Submitted) Receipt() (Receipt, bool)           { return Receipt{}, false }
func (Submitted) MessageToCustomer() string {
	return "Thank you for submitting your request. We will get back to you with a quote shortly."
}

type Pending struct{}

func (Pending) Price() (float64, bool)             { return 0, false }
func (Pending) AssignedMechanic() (Mechanic, bool) { return Mechanic{}, false }
func (Pending) Receipt() (Receipt, bool)           { return Receipt{}, false }
func (Pending) MessageToCustomer() string {
	return "Your quote is being prepared by one of our mechanics."
}

type Ready struct {
	price float64
}

func (s Ready) Price() (float64, bool)           { return s.price, true }
func (Ready) AssignedMechanic() (Mechanic, bool) { return Mechanic{}, false }
func (Ready) Receipt() (Receipt, bool)           { return Receipt{}, false }
func (s Ready) MessageToCustomer() string {
	return fmt.Sprintf("Your quote is ready: $%.2f. Book a time that suits you.", s.price)
}

type Booked struct {
	price    float64
	mechanic Mechanic
}

func (s Booked) Price() (float64, bool)             { return s.price, true }
func (s Booked) AssignedMechanic() (Mechanic, bool) { return s.mechanic, true }
func (Booked) Receipt() (Receipt, bool)             { return Receipt{}, false }
func (s Booked) MessageToCustomer() string {
	return fmt.Sprintf("You are booked in. %s will be servicing your car.", s.mechanic.Name)
}

type Completed struct {
	price    float64
	mechanic Mechanic
	receipt  Receipt
}

func (s Completed) Price() (float64, bool)             { return s.price, true }
func (s Completed) AssignedMechanic() (Mechanic, bool) { return s.mechanic, true }
func (s Completed) Receipt() (Receipt, bool)           { return s.receipt, true }
func (s Completed) MessageToCustomer() string {
	return fmt.Sprintf("Your car has been serviced by %s. Total charged: $%.2f.", s.mechanic.Name, s.receipt.Total)
}
