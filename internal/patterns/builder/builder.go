// Package builder assembles service quotes step by step.
package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comalice/storex/internal/patterns/chain"
)

var ErrIncompleteQuote = errors.New("incomplete quote")

type Customer struct {
	Name    string
	Address string
	Email   string
}

type Quote struct {
	Customer Customer
	Car      string
	Services []Service
	Mechanic Mechanic
}

func (q Quote) Total() float64 {
	var total float64
	for _, s := range q.Services {
		total += s.Price
	}
	return total
}

func (q Quote) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote for %s (%s)\n", q.Customer.Name, q.Car)
	for _, s := range q.Services {
		fmt.Fprintf(&b, "  %-25s %8.2f\n", s.Name, s.Price)
	}
	fmt.Fprintf(&b, "  %-25s %8.2f\n", "Total", q.Total())
	fmt.Fprintf(&b, "  Mechanic: %s", q.Mechanic.Name)
	return b.String()
}

// QuoteBuilder collects the parts of a Quote.
type QuoteBuilder struct {
	catalog  *Catalog
	customer *Customer
	car      string
	services []Service
	mechanic *Mechanic
}

func NewQuoteBuilder(catalog *Catalog) *QuoteBuilder {
	return &QuoteBuilder{catalog: catalog}
}

func (b *QuoteBuilder) SetCustomer(c Customer) { b.customer = &c }

func (b *QuoteBuilder) SetCar(car string) { b.car = car }

func (b *QuoteBuilder) AddService(s Service) { b.services = append(b.services, s) }

// SetMechanic assigns m explicitly.
func (b *QuoteBuilder) SetMechanic(m Mechanic) { b.mechanic = &m }

// AssignMechanic picks the first catalog mechanic able to do every service
// added so far. It returns false, leaving no mechanic set, if there is none.
func (b *QuoteBuilder) AssignMechanic() bool {
	b.mechanic = nil
	required := b.requiredSkill()
	for _, m := range b.catalog.Mechanics {
		if m.Skill >= required {
			b.mechanic = &m
			return true
		}
	}
	return false
}

func (b *QuoteBuilder) requiredSkill() chain.Skill {
	var skill chain.Skill
	for _, s := range b.services {
		skill = max(skill, s.MinimumSkill)
	}
	return skill
}

// Valid reports whether Result would succeed.
func (b *QuoteBuilder) Valid() bool {
	return b.missing() == ""
}

func (b *QuoteBuilder) missing() string {
	switch {
	case b.customer == nil:
		return "customer"
	case b.car == "":
		return "car"
	case len(b.services) == 0:
		return "services"
	case b.mechanic == nil:
		return "mechanic"
	case b.mechanic.Skill < b.requiredSkill():
		return "qualified mechanic"
	}
	return ""
}

// Result builds the quote and resets the builder.
func (b *QuoteBuilder) Result() (Quote, error) {
	if m := b.missing(); m != "" {
		return Quote{}, fmt.Errorf("%w: missing %s", ErrIncompleteQuote, m)
	}
	q := Quote{
		Customer: *b.customer,
		Car:      b.car,
		Services: b.services,
		Mechanic: *b.mechanic,
	}
	b.Reset()
	return q, nil
}

func (b *QuoteBuilder) Reset() {
	b.customer = nil
	b.car = ""
	b.services = nil
	b.mechanic = nil
}
