// Package airspace defines the route-network model used by the flight
// planner: named Locations, undirected Connections between them, and the
// Topology container that holds both.
//
// Overview:
//
//   - Location identity is the Name alone. Two Locations with the same name
//     but different coordinates are indistinguishable to the Topology; the
//     last one written wins. This is a modeling invariant, not an accident.
//   - Connection is an undirected edge between two Location names, carrying
//     a distance in kilometers, a Wind condition, and a Closed flag. It is
//     created once at build time and never mutated afterwards.
//   - Topology performs no validation. A Connection may reference names that
//     were never added as Locations; such dangling endpoints are simply
//     invisible to the search layer, which degrades to "no path found".
//
// Concurrency:
//
//   - Topology guards its internal state with a sync.RWMutex, so concurrent
//     builds are safe. During a search the Topology must be treated as
//     read-only; any number of independent searches may then run in
//     parallel without coordination.
//
// Determinism:
//
//   - ConnectionsTouching and Connections return connections in declaration
//     order; Locations returns names sorted lexicographically ascending.
//
// Complexity:
//
//   - There is deliberately no adjacency index: ConnectionsTouching is a
//     linear O(E) scan per call. Callers needing repeated lookups should
//     budget accordingly.
package airspace
