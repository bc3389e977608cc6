// Package coax computes feed-line losses over the amateur bands.
package coax

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"antennacalc/internal/models"
)

// catalogNamespace seeds the name-based component IDs, so an ID is stable
// across restarts and processes.
var catalogNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:antennacalc:coax-catalog"))

// ComponentID returns the deterministic ID of a component.
func ComponentID(c models.Component) string {
	key := strings.Join([]string{c.Group, c.Manufacturer, c.Title}, "/")
	return uuid.NewSHA1(catalogNamespace, []byte(key)).String()
}

// Group is a named set of catalog components in selector order.
type Group struct {
	Key        string             `json:"key"`
	Components []models.Component `json:"components"`
}

// Catalog is an immutable, indexed list of components.
type Catalog struct {
	components []models.Component
	byID       map[string]int
	groups     []Group
}

// NewCatalog indexes entries, assigning IDs. Every entry needs at least one
// loss point and a unique group/manufacturer/title.
func NewCatalog(entries []models.Component) (*Catalog, error) {
	c := &Catalog{
		components: make([]models.Component, 0, len(entries)),
		byID:       make(map[string]int, len(entries)),
	}
	groupIndex := make(map[string]int)

	for _, e := range entries {
		if len(e.Losses) == 0 {
			return nil, fmt.Errorf("component %q has an empty loss table", e.Title)
		}
		e.ID = ComponentID(e)
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate component %s/%s/%s", e.Group, e.Manufacturer, e.Title)
		}
		c.byID[e.ID] = len(c.components)
		c.components = append(c.components, e)

		gi, ok := groupIndex[e.Group]
		if !ok {
			gi = len(c.groups)
			groupIndex[e.Group] = gi
			c.groups = append(c.groups, Group{Key: e.Group})
		}
		c.groups[gi].Components = append(c.groups[gi].Components, e)
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(builtin)
		if err != nil {
			panic(fmt.Sprintf("built-in coax catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Lookup returns the component with the given ID.
func (c *Catalog) Lookup(id string) (models.Component, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Component{}, false
	}
	return c.components[i], true
}

// Components returns all components in selector order.
func (c *Catalog) Components() []models.Component {
	out := make([]models.Component, len(c.components))
	copy(out, c.components)
	return out
}

// Groups returns the components grouped in selector order.
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// ErrAmbiguous is returned by Find when a query names several components.
var ErrAmbiguous = errors.New("ambiguous component")

// Find resolves an ID, a "manufacturer/title" pair or a unique title,
// case-insensitively.
func (c *Catalog) Find(query string) (models.Component, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Component{}, ErrNoSelection
	}
	if comp, ok := c.Lookup(query); ok {
		return comp, nil
	}

	var matches []models.Component
	for _, comp := range c.components {
		if strings.EqualFold(query, comp.Manufacturer+"/"+comp.Title) {
			return comp, nil
		}
		if strings.EqualFold(query, comp.Title) {
			matches = append(matches, comp)
		}
	}

	switch len(matches) {
	case 0:
		return models.Component{}, fmt.Errorf("%w: %s", ErrUnknownComponent, query)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Manufacturer + "/" + m.Title
		}
		return models.Component{}, fmt.Errorf("%w %q, use one of: %s", ErrAmbiguous, query, strings.Join(names, ", "))
	}
}
