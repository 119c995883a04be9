// Package airspace_test exercises the Topology container: keyed inserts with
// last-write-wins semantics, declaration-order connection queries, and the
// deliberate absence of any validation layer.
package airspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightroute/airspace"
)

func TestTopology_AddLocation_LastWriteWins(t *testing.T) {
	topo := airspace.NewTopology()

	// Two Locations sharing a name are indistinguishable by identity; the
	// second insert must silently replace the first.
	topo.AddLocation(&airspace.Location{Name: "Kazan", Lat: 1, Lon: 1})
	topo.AddLocation(&airspace.Location{Name: "Kazan", Lat: 55.8304, Lon: 49.0661, HasFuel: true})

	loc, ok := topo.Location("Kazan")
	require.True(t, ok)
	assert.Equal(t, 55.8304, loc.Lat)
	assert.True(t, loc.HasFuel)
	assert.Len(t, topo.Locations(), 1)
}

func TestTopology_Location_Missing(t *testing.T) {
	topo := airspace.NewTopology()

	loc, ok := topo.Location("Nowhere")
	assert.False(t, ok)
	assert.Nil(t, loc)
}

func TestTopology_Locations_Sorted(t *testing.T) {
	topo := airspace.NewTopology()
	topo.AddLocation(&airspace.Location{Name: "Sochi"})
	topo.AddLocation(&airspace.Location{Name: "Kazan"})
	topo.AddLocation(&airspace.Location{Name: "Moscow"})

	assert.Equal(t, []string{"Kazan", "Moscow", "Sochi"}, topo.Locations())
}

func TestTopology_ConnectionsTouching_DeclarationOrder(t *testing.T) {
	topo := airspace.NewTopology()
	ab := &airspace.Connection{From: "A", To: "B", DistanceKm: 10}
	cb := &airspace.Connection{From: "C", To: "B", DistanceKm: 20}
	cd := &airspace.Connection{From: "C", To: "D", DistanceKm: 30}
	topo.AddConnection(ab)
	topo.AddConnection(cb)
	topo.AddConnection(cd)

	// B appears as both From and To across the list; both orientations match,
	// and the result preserves declaration order.
	got := topo.ConnectionsTouching("B")
	require.Len(t, got, 2)
	assert.Same(t, ab, got[0])
	assert.Same(t, cb, got[1])

	assert.Empty(t, topo.ConnectionsTouching("Z"))
}

func TestTopology_ConnectionsTouching_DanglingEndpointsAllowed(t *testing.T) {
	// No validation: a connection referencing names never added as Locations
	// is stored and returned like any other.
	topo := airspace.NewTopology()
	ghost := &airspace.Connection{From: "Ghost", To: "Phantom", DistanceKm: 5}
	topo.AddConnection(ghost)

	got := topo.ConnectionsTouching("Ghost")
	require.Len(t, got, 1)
	assert.Same(t, ghost, got[0])
}

func TestTopology_ConnectionBetween_FirstMatchByDeclaration(t *testing.T) {
	topo := airspace.NewTopology()
	first := &airspace.Connection{From: "A", To: "B", DistanceKm: 100}
	dup := &airspace.Connection{From: "B", To: "A", DistanceKm: 999}
	topo.AddConnection(first)
	topo.AddConnection(dup)

	// Either orientation matches; duplicates resolve to the first declared.
	c, ok := topo.ConnectionBetween("B", "A")
	require.True(t, ok)
	assert.Same(t, first, c)

	_, ok = topo.ConnectionBetween("A", "C")
	assert.False(t, ok)
}

func TestConnection_Other(t *testing.T) {
	c := &airspace.Connection{From: "A", To: "B"}

	other, ok := c.Other("A")
	assert.True(t, ok)
	assert.Equal(t, "B", other)

	other, ok = c.Other("B")
	assert.True(t, ok)
	assert.Equal(t, "A", other)

	_, ok = c.Other("C")
	assert.False(t, ok)
}

func TestWind_String(t *testing.T) {
	assert.Equal(t, "none", airspace.WindNone.String())
	assert.Equal(t, "headwind", airspace.WindHead.String())
	assert.Equal(t, "fairwind", airspace.WindFair.String())
}
