package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeoCity_Go/internal/domain"
)

func TestZoneCreation(t *testing.T) {
	zone := domain.Zone{Name: "Test Zone", Description: "A test description"}

	assert.Equal(t, "Test Zone", zone.Name)
	assert.Equal(t, "A test description", zone.Description)
	assert.Empty(t, zone.Events)

	zone.AddEvent("blackout")
	assert.Equal(t, []string{"blackout"}, zone.Events)
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	assert.Greater(t, c.Len(), 0)
	assert.Equal(t, 9, c.Len())
	assert.Contains(t, c.ListNames(), "Financial Center")

	names := c.ListNames()
	assert.Equal(t, "Financial Center", names[0])
	assert.Equal(t, "Shopping Mall", names[len(names)-1])
}

func TestGet(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	t.Run("existing zone", func(t *testing.T) {
		zone, ok := c.Get("Financial Center")

		require.True(t, ok)
		require.NotNil(t, zone)
		assert.Equal(t, "Financial Center", zone.Name)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		zone, ok := c.Get("financial center")

		assert.False(t, ok)
		assert.Nil(t, zone)
	})

	t.Run("missing zone", func(t *testing.T) {
		_, ok := c.Get("Moon Base")
		assert.False(t, ok)
	})
}

func TestAdd(t *testing.T) {
	c := newEmptyCatalog(0)

	c.Add(domain.Zone{Name: "A", Description: "first"})
	c.Add(domain.Zone{Name: "B", Description: "second"})
	c.Add(domain.Zone{Name: "A", Description: "replaced"})

	assert.Equal(t, []string{"A", "B"}, c.ListNames(), "overwrite keeps position")
	assert.Equal(t, 2, c.Len())

	zone, ok := c.Get("A")
	require.True(t, ok)
	assert.Equal(t, "replaced", zone.Description)
}

func TestListNames_ReturnsCopy(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	names := c.ListNames()
	names[0] = "Somewhere Else"

	assert.Equal(t, "Financial Center", c.ListNames()[0])
}

func TestAddEvent_OnCatalogZone(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	zone, ok := c.Get("Nightlife District")
	require.True(t, ok)
	zone.AddEvent("street race")

	again, _ := c.Get("Nightlife District")
	assert.Equal(t, []string{"street race"}, again.Events)
}
