// Package planner implements the fuel-aware, minimum-time route search for a
// single aircraft over an airspace.Topology.
//
// Overview:
//
//   - The search runs over an *augmented* state space: a state is a pair of
//     (location, remaining fuel in whole liters), not a bare location. The
//     same city may therefore be admitted many times, once per distinct
//     reachable fuel level, bounded by the tank capacity.
//   - Edge traversal cost is produced by Profile.EdgeCost: wind multipliers
//     on speed and consumption, closure, and insufficient-fuel infeasibility.
//     Traversal time is rounded up to the next 0.1 h; fuel use is truncated
//     toward zero to whole liters.
//   - Arrival at a fuel-capable location with less than a full tank triggers
//     a mandatory refuel: a fixed 0.5 h service delay and a reset to full
//     capacity. There is no option to decline and no partial refuel.
//   - The frontier is a min-heap ordered by f = g + h, where g is elapsed
//     time including refuel delays and h is the great-circle distance to the
//     target divided by the baseline cruise speed. Ties on f fall back to g,
//     then to a monotonically increasing insertion sequence number, so runs
//     are fully deterministic.
//
// Heuristic caveat:
//
//   - h is not guaranteed to be an admissible lower bound: a fairwind
//     connection can push effective speed above the baseline cruise speed,
//     making true remaining time smaller than h for some topologies. The
//     first pop of the target is still accepted as the result. This mirrors
//     the cost model's reference behavior and is kept deliberately; callers
//     needing a proven optimum must supply an admissible heuristic first.
//
// Error handling (sentinel errors):
//
//   - ErrNilTopology:      New was given a nil topology.
//   - ErrLocationNotFound: start or target name is absent from the topology.
//   - ErrNoPathFound:      the frontier was exhausted without reaching the
//     target (includes closed-only routes, fuel-infeasible routes, and
//     dangling connection endpoints).
//   - ErrSearchAborted:    a WithMaxFrontier / WithMaxExpansions cap was hit.
//   - ErrBadLimit:         (via panic) a non-positive cap was configured.
//
// Concurrency:
//
//   - A search is single-threaded and synchronous. The Topology and Profile
//     are read-only during the search, so independent searches over the same
//     topology may run concurrently without coordination.
//
// Complexity:
//
//   - Let F be the number of distinct (location, fuel) states admitted and E
//     the number of connections. Each expansion scans all connections (the
//     topology keeps no adjacency index), so time is O(F · E · log F) and
//     space is O(F + E).
package planner
