package airspace

import (
	"sort"
	"sync"
)

// Topology is the in-memory route network: Locations keyed by name plus an
// ordered list of Connections.
//
// Topology performs no validation: AddLocation overwrites silently on name
// collision (last write wins) and AddConnection never checks that the
// referenced endpoints exist. Malformed topologies are allowed to propagate
// and surface later as search-time failures or silently-absent neighbors.
//
// mu guards both the location map and the connection list, so concurrent
// builds are safe; during a search the Topology must not be mutated.
type Topology struct {
	mu          sync.RWMutex
	locations   map[string]*Location // location name → Location
	connections []*Connection        // declaration order
}

// NewTopology creates an empty Topology.
// Complexity: O(1)
func NewTopology() *Topology {
	return &Topology{
		locations: make(map[string]*Location),
	}
}

// AddLocation inserts loc keyed by its Name. On a name collision the new
// Location replaces the old one (last write wins). loc must be non-nil.
// Complexity: O(1)
func (t *Topology) AddLocation(loc *Location) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.locations[loc.Name] = loc
}

// AddConnection appends c to the connection list in declaration order.
// Endpoint names are not checked against the location set. c must be non-nil.
// Complexity: O(1) amortized
func (t *Topology) AddConnection(c *Connection) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.connections = append(t.connections, c)
}

// Location returns the Location registered under name, and whether it exists.
// Complexity: O(1)
func (t *Topology) Location(name string) (*Location, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	loc, ok := t.locations[name]

	return loc, ok
}

// Locations returns the names of all registered Locations, sorted
// lexicographically ascending for deterministic iteration.
// Complexity: O(V log V)
func (t *Topology) Locations() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.locations))
	for name := range t.locations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Connections returns a copy of the connection list in declaration order.
// The Connection pointers are shared and must be treated as read-only.
// Complexity: O(E)
func (t *Topology) Connections() []*Connection {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*Connection, len(t.connections))
	copy(out, t.connections)

	return out
}

// ConnectionsTouching returns every Connection referencing name as either
// endpoint, in declaration order.
//
// Contract: this is a linear O(E) scan over all connections; there is no
// adjacency index. Callers performing repeated lookups pay O(E) each time.
func (t *Topology) ConnectionsTouching(name string) []*Connection {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []*Connection
	for _, c := range t.connections {
		if c.Touches(name) {
			out = append(out, c)
		}
	}

	return out
}

// ConnectionBetween returns the first declared Connection joining a and b in
// either orientation, and whether one exists. With duplicate connections the
// first match by declaration order wins.
// Complexity: O(E)
func (t *Topology) ConnectionBetween(a, b string) (*Connection, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, c := range t.connections {
		if (c.From == a && c.To == b) || (c.From == b && c.To == a) {
			return c, true
		}
	}

	return nil, false
}
