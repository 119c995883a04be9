package planner

import (
	"math"

	"github.com/katalvlaran/flightroute/airspace"
)

// Wind multipliers applied to baseline cruise speed and consumption.
const (
	headwindSpeedFactor = 0.80
	headwindFuelFactor  = 1.20
	fairwindSpeedFactor = 1.10
	fairwindFuelFactor  = 0.90
)

// timeStepsPerHour is the billing granularity for traversal time: every leg
// is billed in whole tenths of an hour, rounded up.
const timeStepsPerHour = 10

// windFactors returns the (speed, fuel) multipliers for a wind condition.
func windFactors(w airspace.Wind) (speed, fuel float64) {
	switch w {
	case airspace.WindHead:
		return headwindSpeedFactor, headwindFuelFactor
	case airspace.WindFair:
		return fairwindSpeedFactor, fairwindFuelFactor
	default:
		return 1.0, 1.0
	}
}

// EdgeCost evaluates traversing c with currentFuel liters on board.
//
// It is a pure function with no failure mode beyond the infeasibility
// sentinel ok=false, returned when:
//
//  1. the connection is closed;
//  2. the effective speed is not positive (never a division fault);
//  3. the raw fuel requirement exceeds currentFuel.
//
// A feasible result is (timeHours, fuelLiters, true) where timeHours is the
// raw traversal time rounded up to the nearest 0.1 h and fuelLiters is the
// raw fuel requirement truncated toward zero to whole liters. Note that the
// feasibility comparison in rule 3 uses the raw (untruncated) requirement.
//
// Complexity: O(1)
func (p Profile) EdgeCost(c *airspace.Connection, currentFuel int) (timeHours float64, fuelLiters int, ok bool) {
	// 1) Closed segments are impassable regardless of fuel state.
	if c.Closed {
		return 0, 0, false
	}

	// 2) Apply wind multipliers to the baseline speed and consumption.
	speedFactor, fuelFactor := windFactors(c.Wind)
	effectiveSpeed := p.CruiseSpeed * speedFactor
	effectiveConsumption := p.Consumption * fuelFactor

	// 3) A non-positive effective speed would make the time quotient
	//    meaningless (or a division by zero); treat as infeasible.
	if effectiveSpeed <= 0 {
		return 0, 0, false
	}

	// 4) Raw traversal time and fuel requirement.
	rawTime := c.DistanceKm / effectiveSpeed
	fuelNeeded := c.DistanceKm * effectiveConsumption

	// 5) Not enough fuel on board for this segment.
	if fuelNeeded > float64(currentFuel) {
		return 0, 0, false
	}

	// 6) Bill time in whole tenths of an hour (ceiling); truncate fuel to
	//    whole liters toward zero.
	timeHours = math.Ceil(rawTime*timeStepsPerHour) / timeStepsPerHour

	return timeHours, int(fuelNeeded), true
}
