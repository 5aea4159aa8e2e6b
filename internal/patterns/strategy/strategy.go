// Package strategy routes parts orders to a supplier chosen by car type.
package strategy

import (
	"fmt"

	"go.uber.org/zap"
)

type CarType int

const (
	Asian CarType = iota
	European
	Domestic
)

func (c CarType) String() string {
	switch c {
	case Asian:
		return "Asian"
	case European:
		return "European"
	case Domestic:
		return "Domestic"
	}
	return fmt.Sprintf("CarType(%d)", int(c))
}

type Part struct {
	Name  string
	Price float64
}

type Mechanic struct {
	ID   int
	Name string
}

type Order struct {
	ID        int
	Mechanic  Mechanic
	Parts     []Part
	CarType   CarType
	Signature *int
	Fulfilled bool
}

func (o *Order) Total() float64 {
	var total float64
	for _, p := range o.Parts {
		total += p.Price
	}
	return total
}

// Supplier is the ordering strategy for one kind of car.
type Supplier interface {
	Name() string
	Fulfill(order *Order) bool
}

const supervisorKey = 5

// SupervisorSignature signs an order so suppliers accept it from any mechanic.
func SupervisorSignature(order *Order) int {
	return order.ID ^ supervisorKey
}

// PartsNStuff only serves approved mechanics, or orders carrying a valid
// supervisor signature.
type PartsNStuff struct {
	approved map[int]bool
}

func NewPartsNStuff() *PartsNStuff {
	return &PartsNStuff{approved: map[int]bool{}}
}

func (p *PartsNStuff) AddApprovedMechanic(id int) { p.approved[id] = true }

func (*PartsNStuff) Name() string { return "PartsNStuff" }

func (p *PartsNStuff) Fulfill(order *Order) bool {
	signed := order.Signature != nil && *order.Signature == SupervisorSignature(order)
	if !p.approved[order.Mechanic.ID] && !signed {
		return false
	}
	order.Fulfilled = true
	return true
}

// OpenSupplier serves anyone.
type OpenSupplier struct {
	Label string
}

func (s OpenSupplier) Name() string { return s.Label }

func (OpenSupplier) Fulfill(order *Order) bool {
	order.Fulfilled = true
	return true
}

// OrderManager numbers orders and hands them to the supplier for their car
// type. A rejected order is signed by the supervisor and tried once more.
type OrderManager struct {
	suppliers map[CarType]Supplier
	nextID    int
	log       *zap.SugaredLogger
}

func NewOrderManager(suppliers map[CarType]Supplier, log *zap.SugaredLogger) *OrderManager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &OrderManager{suppliers: suppliers, nextID: 1, log: log}
}

func (m *OrderManager) GenerateOrder(mechanic Mechanic, parts []Part, carType CarType) *Order {
	o := &Order{ID: m.nextID, Mechanic: mechanic, Parts: parts, CarType: carType}
	m.nextID++
	return o
}

// FulfillOrder returns the supplier that fulfilled the order, or an error.
func (m *OrderManager) FulfillOrder(order *Order) (string, error) {
	s, ok := m.suppliers[order.CarType]
	if !ok {
		return "", fmt.Errorf("no supplier for %v cars", order.CarType)
	}
	if s.Fulfill(order) {
		m.log.Debugw("Order fulfilled", "order", order.ID, "supplier", s.Name())
		return s.Name(), nil
	}
	sig := SupervisorSignature(order)
	order.Signature = &sig
	m.log.Infow("Order rejected, retrying with supervisor signature", "order", order.ID, "supplier", s.Name())
	if s.Fulfill(order) {
		return s.Name(), nil
	}
	return "", fmt.Errorf("%s rejected order %d", s.Name(), order.ID)
}
