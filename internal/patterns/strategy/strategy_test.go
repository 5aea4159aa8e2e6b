package strategy

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSupervisorSignature(t *testing.T) {
	if got := SupervisorSignature(&Order{ID: 3}); got != 6 {
		t.Errorf("SupervisorSignature() = %d, want 6", got)
	}
}

func TestPartsNStuff_Fulfill(t *testing.T) {
	p := NewPartsNStuff()
	p.AddApprovedMechanic(6653)

	approved := &Order{ID: 1, Mechanic: Mechanic{ID: 6653}}
	if !p.Fulfill(approved) || !approved.Fulfilled {
		t.Error("approved mechanic rejected")
	}

	stranger := &Order{ID: 2, Mechanic: Mechanic{ID: 7785}}
	if p.Fulfill(stranger) {
		t.Error("unapproved mechanic accepted")
	}

	bad := 1234
	stranger.Signature = &bad
	if p.Fulfill(stranger) {
		t.Error("forged signature accepted")
	}

	good := SupervisorSignature(stranger)
	stranger.Signature = &good
	if !p.Fulfill(stranger) {
		t.Error("signed order rejected")
	}
}

func TestOrderManager(t *testing.T) {
	parts := NewPartsNStuff()
	parts.AddApprovedMechanic(6653)

	core, logs := observer.New(zapcore.InfoLevel)
	m := NewOrderManager(map[CarType]Supplier{
		Asian:    parts,
		European: parts,
		Domestic: OpenSupplier{Label: "Local Auto"},
	}, zap.New(core).Sugar())

	joe := Mechanic{ID: 6653, Name: "Joe Stevenson"}
	mike := Mechanic{ID: 7785, Name: "Mike Rove"}

	o1 := m.GenerateOrder(joe, []Part{{"Brake pads", 15.22}, {"Brake Fluid", 18.99}}, Asian)
	o2 := m.GenerateOrder(mike, []Part{{"5 qt Synthetic Oil", 15.99}}, European)
	o3 := m.GenerateOrder(mike, []Part{{"Engine Coolant", 18.99}}, Domestic)
	if o1.ID != 1 || o2.ID != 2 || o3.ID != 3 {
		t.Fatalf("ids = %d %d %d", o1.ID, o2.ID, o3.ID)
	}

	if name, err := m.FulfillOrder(o1); err != nil || name != "PartsNStuff" || o1.Signature != nil {
		t.Errorf("order 1: %q, %v, signature %v", name, err, o1.Signature)
	}
	if name, err := m.FulfillOrder(o2); err != nil || name != "PartsNStuff" || o2.Signature == nil {
		t.Errorf("order 2: %q, %v, signature %v", name, err, o2.Signature)
	}
	if name, err := m.FulfillOrder(o3); err != nil || name != "Local Auto" {
		t.Errorf("order 3: %q, %v", name, err)
	}
	if logs.Len() != 1 {
		t.Errorf("logged %d entries, want 1 retry", logs.Len())
	}
}

func TestOrderManager_NoSupplier(t *testing.T) {
	m := NewOrderManager(nil, nil)
	if _, err := m.FulfillOrder(m.GenerateOrder(Mechanic{}, nil, European)); err == nil {
		t.Error("expected error")
	}
}

func TestCarTypeString(t *testing.T) {
	if European.String() != "European" || CarType(9).String() != "CarType(9)" {
		t.Error("CarType.String() wrong")
	}
}
