package world

import (
	"fmt"

	"github.com/osse101/NeoCity_Go/internal/catalog"
	"github.com/osse101/NeoCity_Go/internal/domain"
)

// Catalog holds the zones of NeoCity keyed by name, in insertion order
type Catalog struct {
	zones map[string]*domain.Zone
	order []string
}

// NewCatalog builds the zone catalog from the embedded seed data
func NewCatalog() (*Catalog, error) {
	zones, err := catalog.Zones()
	if err != nil {
		return nil, fmt.Errorf("failed to load zone catalog: %w", err)
	}

	c := newEmptyCatalog(len(zones))
	for _, z := range zones {
		c.Add(z)
	}
	return c, nil
}

func newEmptyCatalog(size int) *Catalog {
	return &Catalog{
		zones: make(map[string]*domain.Zone, size),
		order: make([]string, 0, size),
	}
}

// Add inserts a zone, or overwrites the zone with the same name in place
func (c *Catalog) Add(zone domain.Zone) {
	if _, exists := c.zones[zone.Name]; !exists {
		c.order = append(c.order, zone.Name)
	}
	z := zone
	c.zones[zone.Name] = &z
}

// Get returns the zone with the exact given name
func (c *Catalog) Get(name string) (*domain.Zone, bool) {
	z, ok := c.zones[name]
	return z, ok
}

// ListNames returns zone names in insertion order
func (c *Catalog) ListNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of zones
func (c *Catalog) Len() int {
	return len(c.order)
}
