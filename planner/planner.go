// Package planner search engine: heuristic-guided best-first search over
// (location, remaining fuel) states.
package planner

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/flightroute/airspace"
)

// refuelDelayHours is the fixed service delay charged by a mandatory refuel.
const refuelDelayHours = 0.5

// Planner binds an immutable Topology and aircraft Profile and answers
// minimum-time route queries between named locations.
type Planner struct {
	topo    *airspace.Topology // read-only during Search
	profile Profile            // static aircraft parameters
	options Options            // search caps
}

// New constructs a Planner bound to topo and profile.
//
// Returns ErrNilTopology if topo is nil. The profile is not validated: a
// degenerate profile (zero cruise speed, zero capacity) makes every edge
// infeasible and searches simply fail with ErrNoPathFound.
//
// Complexity: O(len(opts))
func New(topo *airspace.Topology, profile Profile, opts ...Option) (*Planner, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{topo: topo, profile: profile, options: cfg}, nil
}

// Search finds a minimum-time route from startName to targetName under the
// planner's fuel, wind, and closure constraints.
//
// The aircraft departs with a full tank. On success the returned Itinerary
// carries the route, total time (2 decimals), the post-hoc total distance,
// and the two independent refuel accountings.
//
// Errors:
//
//   - ErrLocationNotFound if either name is absent from the topology
//     (wrapped with the offending name);
//   - ErrNoPathFound if the frontier is exhausted;
//   - ErrSearchAborted if a configured cap is exceeded.
//
// Search never panics for a well-formed topology and never mutates the
// topology, so independent searches may run concurrently.
func (p *Planner) Search(startName, targetName string) (*Itinerary, error) {
	// 1) Resolve both endpoints; unknown names fail before any search work.
	start, ok := p.topo.Location(startName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, startName)
	}
	target, ok := p.topo.Location(targetName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, targetName)
	}

	// 2) Initialize the runner and execute the main loop.
	r := &runner{
		topo:    p.topo,
		profile: p.profile,
		options: p.options,
		target:  target,
		visited: make(map[fuelState]float64),
	}
	r.init(start)

	return r.run()
}

// fuelState is the deduplication key of the augmented state space: a
// location name plus the truncated whole-liter fuel level on arrival.
type fuelState struct {
	name string
	fuel int
}

// node is an admitted search state, stored in the arena. The path is not
// carried in the state; it is reconstructed once, at success, by walking
// parent indices.
type node struct {
	loc     *airspace.Location // current location
	fuel    int                // remaining fuel, whole liters
	g       float64            // elapsed hours, refuel delays included
	parent  int                // arena index of the predecessor, -1 for the root
	refuels int                // refuel events triggered along this branch
}

// runner holds the mutable state of a single Search execution.
type runner struct {
	topo    *airspace.Topology
	profile Profile
	options Options

	target  *airspace.Location
	arena   []node                // all admitted states, root first
	visited map[fuelState]float64 // (name, fuel) → best admitted g
	pq      frontier              // min-heap keyed by (f, g, seq)
	seq     uint64                // insertion counter, the final tie-break

	expansions int // non-terminal pops so far
}

// init seeds the arena, the visited map, and the frontier with the start
// state: full tank, zero elapsed time.
func (r *runner) init(start *airspace.Location) {
	full := r.profile.TankCapacity
	r.arena = append(r.arena, node{loc: start, fuel: full, g: 0, parent: -1})
	r.visited[fuelState{name: start.Name, fuel: full}] = 0

	heap.Init(&r.pq)
	r.push(0, r.heuristic(start))
}

// heuristic projects remaining time from loc to the target: great-circle
// distance (rounded up to whole km) over baseline cruise speed. Not
// guaranteed admissible under fairwind; see package docs.
func (r *runner) heuristic(loc *airspace.Location) float64 {
	return HaversineKm(loc, r.target) / r.profile.CruiseSpeed
}

// push admits the arena node at idx to the frontier with priority f.
func (r *runner) push(idx int, h float64) {
	heap.Push(&r.pq, &frontierItem{
		f:   r.arena[idx].g + h,
		g:   r.arena[idx].g,
		idx: idx,
		seq: r.seq,
	})
	r.seq++
}

// run is the main search loop: pop the lowest-priority state, terminate on
// the first pop of the target, otherwise expand every touching connection.
func (r *runner) run() (*Itinerary, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the best frontier entry. There is deliberately no staleness
		//    check here: deduplication happens at admission time only, and a
		//    superseded entry expands into children that the visited filter
		//    then discards.
		item := heap.Pop(&r.pq).(*frontierItem)
		cur := r.arena[item.idx]

		// 2) First pop of the target terminates the search.
		if cur.loc.Name == r.target.Name {
			return r.buildItinerary(item.idx), nil
		}

		// 3) Enforce the expansion cap before doing any expansion work.
		if r.expansions >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: expanded %d states", ErrSearchAborted, r.expansions)
		}
		r.expansions++

		// 4) Expand every connection touching the current location.
		if err := r.expand(item.idx); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %s → %s", ErrNoPathFound, r.startName(), r.target.Name)
}

// expand generates successor states for the arena node at idx and admits
// those that pass the visited filter.
func (r *runner) expand(idx int) error {
	cur := r.arena[idx]

	for _, conn := range r.topo.ConnectionsTouching(cur.loc.Name) {
		nextName, ok := conn.Other(cur.loc.Name)
		if !ok {
			continue
		}

		// Dangling endpoint: the connection references a name that was never
		// registered as a Location. Skip silently; an unreachable target then
		// surfaces as ErrNoPathFound, not as a distinct error.
		next, ok := r.topo.Location(nextName)
		if !ok {
			continue
		}

		// Closed, too-slow, or fuel-infeasible segments are skipped.
		timeHours, fuelUsed, ok := r.profile.EdgeCost(conn, cur.fuel)
		if !ok {
			continue
		}

		newFuel := cur.fuel - fuelUsed
		newG := cur.g + timeHours
		refuels := cur.refuels

		// Mandatory refuel: unconditional whenever the trigger holds. The
		// target is not exempt; arriving at a fuel-capable target still pays
		// the service delay.
		if next.HasFuel && newFuel < r.profile.TankCapacity {
			newG += refuelDelayHours
			newFuel = r.profile.TankCapacity
			refuels++
		}

		// Visited filter: admit only strictly better g for the exact
		// (location, fuel) pair.
		key := fuelState{name: next.Name, fuel: newFuel}
		if best, seen := r.visited[key]; seen && best <= newG {
			continue
		}
		r.visited[key] = newG

		r.arena = append(r.arena, node{
			loc:     next,
			fuel:    newFuel,
			g:       newG,
			parent:  idx,
			refuels: refuels,
		})
		r.push(len(r.arena)-1, r.heuristic(next))

		if r.pq.Len() > r.options.MaxFrontier {
			return fmt.Errorf("%w: frontier exceeded %d entries", ErrSearchAborted, r.options.MaxFrontier)
		}
	}

	return nil
}

// buildItinerary reconstructs the result for the winning arena node: the
// route by walking parent indices, the total distance by re-walking
// consecutive pairs, and the two independent refuel accountings.
func (r *runner) buildItinerary(idx int) *Itinerary {
	win := r.arena[idx]

	// 1) Walk parents back to the root, then reverse into start→target order.
	var rev []int
	for i := idx; i >= 0; i = r.arena[i].parent {
		rev = append(rev, i)
	}
	route := make([]string, 0, len(rev))
	locs := make([]*airspace.Location, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		n := r.arena[rev[i]]
		route = append(route, n.loc.Name)
		locs = append(locs, n.loc)
	}

	// 2) Recompute total distance post hoc: for each consecutive pair, the
	//    first declared connection between them contributes its distance.
	var distance float64
	for i := 0; i+1 < len(route); i++ {
		if c, ok := r.topo.ConnectionBetween(route[i], route[i+1]); ok {
			distance += c.DistanceKm
		}
	}

	// 3) Refuel stops by capability flag, final destination excluded. This is
	//    independent of the triggered-event counter and may disagree with it.
	var stops []string
	for _, loc := range locs[:len(locs)-1] {
		if loc.HasFuel {
			stops = append(stops, loc.Name)
		}
	}

	return &Itinerary{
		Route:           route,
		TotalTimeHours:  math.Round(win.g*100) / 100,
		TotalDistanceKm: int(math.Round(distance)),
		RefuelStops:     stops,
		RefuelCount:     win.refuels,
	}
}

// startName returns the root state's location name for error context.
func (r *runner) startName() string {
	return r.arena[0].loc.Name
}

// frontierItem is a frontier entry: priority f = g + h, the accumulated g
// for the secondary tie-break, the arena index of the state, and the
// insertion sequence number as the final, total tie-break.
type frontierItem struct {
	f   float64 // primary key, ascending
	g   float64 // secondary key, ascending
	idx int     // arena index of the admitted state
	seq uint64  // tertiary key: insertion order, strictly increasing
}

// frontier is a min-heap of *frontierItem ordered by (f, g, seq) ascending.
// Domain values (locations, paths) are never compared for ordering; seq
// guarantees a deterministic total order even on exact float ties.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, then g, then insertion sequence.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
