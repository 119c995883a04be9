// Package routefile loads a route network and aircraft profile from a YAML
// document, replacing hardcoded demonstration topologies with an explicit
// configuration structure.
//
// Schema:
//
//	aircraft:
//	  tank_capacity_l: 16000      # whole liters, > 0
//	  consumption_l_per_km: 2.7   # > 0
//	  cruise_speed_kmh: 841       # > 0
//	locations:
//	  - name: Moscow
//	    lat: 55.7558
//	    lon: 37.6173
//	    fuel: true
//	connections:
//	  - from: Moscow
//	    to: Sochi
//	    distance_km: 1360         # >= 0
//	    wind: headwind            # "", none, headwind or fairwind
//	    closed: false
//
// Validation is syntax-level only: unknown wind labels, negative distances
// and a degenerate aircraft are rejected (ErrUnknownWind, ErrBadDistance,
// ErrBadAircraft). Endpoint names are deliberately NOT checked against the
// location list — the topology layer performs no validation, and dangling
// endpoints degrade to "no path found" at search time.
package routefile
