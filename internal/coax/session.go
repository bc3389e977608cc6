package coax

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"antennacalc/internal/models"
)

var (
	ErrNoSelection      = errors.New("select a cable or connector")
	ErrInvalidQuantity  = errors.New("enter a valid length or quantity")
	ErrUnknownComponent = errors.New("component not found")
	ErrUnknownNode      = errors.New("node not found")
	ErrInvalidPower     = errors.New("power must be a non-negative number")
)

func unknownComponent(id string) error {
	return fmt.Errorf("%w: %s", ErrUnknownComponent, id)
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseQuantity reads the leading number of s, accepting a decimal comma.
// Anything unparsable counts as zero.
func ParseQuantity(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Session is one feed-line being edited. Every mutation recomputes the
// band results before returning. A Session is not safe for concurrent use.
type Session struct {
	catalog *Catalog
	nodes   []models.Node
	power   float64
	results []models.BandResult
	newID   func() string
}

// NewSession starts an empty feed line at the given transmitter power.
func NewSession(catalog *Catalog, powerW float64) *Session {
	if catalog == nil {
		catalog = Default()
	}
	if math.IsNaN(powerW) || powerW < 0 {
		powerW = 0
	}
	s := &Session{
		catalog: catalog,
		power:   powerW,
		newID:   uuid.NewString,
	}
	s.recompute()
	return s
}

// AddNode appends a component with a positive quantity.
func (s *Session) AddNode(componentID string, quantity float64) (models.Node, error) {
	if strings.TrimSpace(componentID) == "" {
		return models.Node{}, ErrNoSelection
	}
	if math.IsNaN(quantity) || quantity <= 0 {
		return models.Node{}, ErrInvalidQuantity
	}
	c, ok := s.catalog.Lookup(componentID)
	if !ok {
		return models.Node{}, unknownComponent(componentID)
	}

	node := newNode(s.newID(), c, quantity)
	s.nodes = append(s.nodes, node)
	s.recompute()
	return node, nil
}

// Restore puts back a node carried over from an earlier request, keeping
// its ID. Quantities of zero or less are kept but contribute nothing.
func (s *Session) Restore(id, componentID string, quantity float64) (models.Node, error) {
	c, ok := s.catalog.Lookup(componentID)
	if !ok {
		return models.Node{}, unknownComponent(componentID)
	}
	if id == "" {
		id = s.newID()
	}
	if math.IsNaN(quantity) {
		quantity = 0
	}

	node := newNode(id, c, quantity)
	s.nodes = append(s.nodes, node)
	s.recompute()
	return node, nil
}

// RemoveNode deletes the node with the given ID.
func (s *Session) RemoveNode(id string) error {
	for i, n := range s.nodes {
		if n.ID == id {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			s.recompute()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownNode, id)
}

// UpdateQuantity sets a node quantity from user text, unparsable text
// becoming zero.
func (s *Session) UpdateQuantity(id, text string) error {
	return s.SetQuantity(id, ParseQuantity(text))
}

// SetQuantity sets a node quantity.
func (s *Session) SetQuantity(id string, quantity float64) error {
	if math.IsNaN(quantity) {
		quantity = 0
	}
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes[i].Quantity = quantity
			s.recompute()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownNode, id)
}

// SetPower changes the transmitter power.
func (s *Session) SetPower(powerW float64) error {
	if math.IsNaN(powerW) || math.IsInf(powerW, 0) || powerW < 0 {
		return ErrInvalidPower
	}
	s.power = powerW
	s.recompute()
	return nil
}

// Power returns the transmitter power in watts.
func (s *Session) Power() float64 {
	return s.power
}

// Nodes returns a copy of the feed line.
func (s *Session) Nodes() []models.Node {
	out := make([]models.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Results returns a copy of the current band results.
func (s *Session) Results() []models.BandResult {
	out := make([]models.BandResult, len(s.results))
	copy(out, s.results)
	return out
}

// Result returns the session as a calculator result record.
func (s *Session) Result() models.CoaxResult {
	return models.CoaxResult{
		PowerW: s.power,
		Nodes:  s.Nodes(),
		Bands:  s.Results(),
	}
}

func (s *Session) recompute() {
	// nodes only ever hold catalog components, so Sweep cannot fail here
	results, err := Sweep(s.catalog, s.nodes, s.power)
	if err != nil {
		results = nil
	}
	s.results = results
}

func newNode(id string, c models.Component, quantity float64) models.Node {
	return models.Node{
		ID:          id,
		ComponentID: c.ID,
		Label:       c.Label(),
		Type:        c.Type,
		Quantity:    quantity,
	}
}

// Calculate builds a session from a request and returns its result.
func Calculate(catalog *Catalog, in models.CoaxInput) (models.CoaxResult, error) {
	s := NewSession(catalog, 0)
	if err := s.SetPower(in.PowerW); err != nil {
		return models.CoaxResult{}, err
	}
	for _, n := range in.Nodes {
		if n.ID != "" {
			if _, err := s.Restore(n.ID, n.ComponentID, n.Quantity); err != nil {
				return models.CoaxResult{}, err
			}
			continue
		}
		if _, err := s.AddNode(n.ComponentID, n.Quantity); err != nil {
			return models.CoaxResult{}, err
		}
	}
	return s.Result(), nil
}

// IsUserError reports whether err is a feed-line editing mistake that
// should be shown to the user rather than treated as a failure.
func IsUserError(err error) bool {
	for _, target := range []error{ErrNoSelection, ErrInvalidQuantity, ErrUnknownComponent, ErrUnknownNode, ErrInvalidPower, ErrAmbiguous} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
