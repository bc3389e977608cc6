package coax

import (
	"errors"
	"reflect"
	"testing"

	"antennacalc/internal/models"
)

func newTestSession(power float64) *Session {
	s := NewSession(Default(), power)
	counter := 0
	s.newID = func() string {
		counter++
		return "node-" + string(rune('0'+counter))
	}
	return s
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"12", 12},
		{" 12.5 ", 12.5},
		{"1,5", 1.5},
		{"10m", 10},
		{".5", 0.5},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"1e2", 100},
	}

	for _, tt := range tests {
		if got := ParseQuantity(tt.input); got != tt.expected {
			t.Errorf("ParseQuantity(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestSessionAddNode(t *testing.T) {
	s := newTestSession(50)
	rg58 := findComponent(t, "Generic/RG-58")

	if len(s.Results()) != 0 {
		t.Fatalf("Expected no results for an empty session")
	}

	node, err := s.AddNode(rg58.ID, 100)
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if node.ID != "node-1" || node.Label != rg58.Label() || node.Type != models.ComponentCable {
		t.Errorf("Unexpected node %+v", node)
	}
	if len(s.Results()) != len(Bands) {
		t.Errorf("Expected results for every band after adding a cable, got %d", len(s.Results()))
	}

	errorCases := []struct {
		name        string
		componentID string
		quantity    float64
		expected    error
	}{
		{"no selection", "", 10, ErrNoSelection},
		{"zero quantity", rg58.ID, 0, ErrInvalidQuantity},
		{"negative quantity", rg58.ID, -1, ErrInvalidQuantity},
		{"unknown component", "missing", 10, ErrUnknownComponent},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.AddNode(tt.componentID, tt.quantity); !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if !IsUserError(err) {
				t.Errorf("Expected %v to be a user error", err)
			}
		})
	}

	if len(s.Nodes()) != 1 {
		t.Errorf("Expected rejected adds to leave one node, got %d", len(s.Nodes()))
	}
}

func TestSessionMutationsRecompute(t *testing.T) {
	s := newTestSession(50)
	rg58 := findComponent(t, "Generic/RG-58")
	att := findComponent(t, "3 dB")

	cable, _ := s.AddNode(rg58.ID, 100)
	pad, _ := s.AddNode(att.ID, 1)

	expected, err := Sweep(Default(), s.Nodes(), 50)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if !reflect.DeepEqual(s.Results(), expected) {
		t.Error("Expected session results to match a fresh sweep")
	}

	if err := s.UpdateQuantity(cable.ID, "not a number"); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	for _, r := range s.Results() {
		if r.LossDB != 3 {
			t.Errorf("Expected only the attenuator to count at %v MHz, got %v dB", r.FrequencyMHz, r.LossDB)
		}
	}

	if err := s.SetPower(100); err != nil {
		t.Fatalf("SetPower: %v", err)
	}
	for _, r := range s.Results() {
		if r.OutputPowerW <= 50 || r.OutputPowerW >= 51 {
			t.Errorf("Expected ~50.1 W after a 3 dB pad at 100 W, got %v", r.OutputPowerW)
		}
	}

	if err := s.RemoveNode(pad.ID); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	if len(s.Results()) != 0 {
		t.Errorf("Expected no results once the only contributing node is gone, got %d", len(s.Results()))
	}

	if err := s.RemoveNode(pad.ID); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Expected ErrUnknownNode for a second remove, got %v", err)
	}
	if err := s.SetQuantity("ghost", 1); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Expected ErrUnknownNode, got %v", err)
	}
	if err := s.SetPower(-5); !errors.Is(err, ErrInvalidPower) {
		t.Errorf("Expected ErrInvalidPower, got %v", err)
	}
	if s.Power() != 100 {
		t.Errorf("Expected rejected power change to keep 100 W, got %v", s.Power())
	}
}

func TestSessionRestore(t *testing.T) {
	s := newTestSession(50)
	n := findComponent(t, "N Type")

	node, err := s.Restore("kept-id", n.ID, 0)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if node.ID != "kept-id" {
		t.Errorf("Expected restored node to keep its ID, got %s", node.ID)
	}
	if len(s.Results()) != 0 {
		t.Error("Expected a zero quantity node to contribute nothing")
	}

	if _, err := s.Restore("x", "missing", 1); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Expected ErrUnknownComponent, got %v", err)
	}
}

func TestCalculate(t *testing.T) {
	rg58 := findComponent(t, "Generic/RG-58")

	result, err := Calculate(Default(), models.CoaxInput{
		PowerW: 50,
		Nodes:  []models.CoaxNodeInput{{ComponentID: rg58.ID, Quantity: 100}},
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(result.Nodes) != 1 || len(result.Bands) != len(Bands) {
		t.Errorf("Unexpected result: %d nodes, %d bands", len(result.Nodes), len(result.Bands))
	}

	_, err = Calculate(Default(), models.CoaxInput{
		PowerW: 50,
		Nodes:  []models.CoaxNodeInput{{ComponentID: rg58.ID, Quantity: 0}},
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity, got %v", err)
	}

	if _, err := Calculate(Default(), models.CoaxInput{PowerW: -1}); !errors.Is(err, ErrInvalidPower) {
		t.Errorf("Expected ErrInvalidPower, got %v", err)
	}
}
