// Package planner type declarations: the aircraft Profile, the Itinerary
// result, sentinel errors, and the functional search Options.
package planner

import (
	"errors"
	"math"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilTopology indicates that a nil *airspace.Topology was passed to New.
	ErrNilTopology = errors.New("planner: topology is nil")

	// ErrLocationNotFound indicates that the start or target name is not
	// registered in the topology.
	ErrLocationNotFound = errors.New("planner: location not found")

	// ErrNoPathFound indicates that the search space was exhausted without
	// reaching the target under the fuel and closure constraints.
	ErrNoPathFound = errors.New("planner: no path found")

	// ErrSearchAborted indicates that a configured frontier-size or
	// expansion cap was exceeded before the target was reached.
	ErrSearchAborted = errors.New("planner: search aborted by configured limit")

	// ErrBadLimit indicates that a non-positive value was passed to
	// WithMaxFrontier or WithMaxExpansions.
	ErrBadLimit = errors.New("planner: limit must be positive")
)

// Profile holds the static aircraft parameters. It is immutable for the
// duration of a search.
type Profile struct {
	// TankCapacity is the fuel tank size in whole liters.
	TankCapacity int

	// Consumption is the baseline fuel burn in liters per kilometer.
	Consumption float64

	// CruiseSpeed is the baseline cruise speed in kilometers per hour.
	CruiseSpeed float64
}

// Itinerary is the successful result of a route search.
//
// RefuelStops and RefuelCount are computed independently and are not
// guaranteed to agree: RefuelStops lists every fuel-capable location along
// the path (excluding the final destination) regardless of whether a refuel
// actually fired there, while RefuelCount counts the refuel events that were
// actually triggered on the winning branch.
type Itinerary struct {
	// Route is the ordered sequence of location names, start to target.
	Route []string

	// TotalTimeHours is the elapsed time in hours, including refuel delays,
	// rounded to 2 decimals.
	TotalTimeHours float64

	// TotalDistanceKm is the route length in kilometers, recomputed post hoc
	// by re-walking the path, rounded to the nearest integer.
	TotalDistanceKm int

	// RefuelStops lists fuel-capable locations along the path, excluding the
	// final destination.
	RefuelStops []string

	// RefuelCount is the number of refuel events triggered during the search.
	RefuelCount int
}

// Options configures the behavior of a route search.
//
// MaxFrontier   – abort with ErrSearchAborted once the frontier holds more
// than this many entries. Default math.MaxInt (unlimited).
// MaxExpansions – abort with ErrSearchAborted after this many non-terminal
// state expansions. Default math.MaxInt (unlimited).
type Options struct {
	MaxFrontier   int // maximum admitted frontier size
	MaxExpansions int // maximum number of expanded states
}

// Option represents a functional option for configuring the planner.
type Option func(*Options)

// WithMaxFrontier caps the frontier size. A search whose frontier grows past
// n entries fails with ErrSearchAborted instead of running unbounded.
// Must pass a positive value; zero or negative panics with ErrBadLimit.
func WithMaxFrontier(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			// Panic to signal invalid configuration early, at option
			// construction rather than deep inside a search.
			panic(ErrBadLimit.Error())
		}
		o.MaxFrontier = n
	}
}

// WithMaxExpansions caps the number of expanded states. A search that pops
// more than n non-terminal states fails with ErrSearchAborted.
// Must pass a positive value; zero or negative panics with ErrBadLimit.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadLimit.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns an Options struct with both caps unlimited.
func DefaultOptions() Options {
	return Options{
		MaxFrontier:   math.MaxInt,
		MaxExpansions: math.MaxInt,
	}
}
