// Package flightroute plans minimum-time flight routes between cities for an
// aircraft constrained by tank capacity, wind-dependent speed and consumption,
// closed corridors, and mandatory mid-route refueling.
//
// 🚀 What is flightroute?
//
//	A small, focused routing library plus a CLI, organized as:
//		• airspace/  — locations, connections, wind and closure attributes
//		• planner/   — edge cost model and the fuel-aware best-first search
//		• routefile/ — YAML route-network and aircraft configuration
//		• cmd/flightroute — the command-line planner and report printer
//
// ✨ Why choose flightroute?
//
//   - Resource-aware search – states are (city, remaining fuel), not bare cities
//   - Deterministic – explicit tie-breaking, identical inputs ⇒ identical plans
//   - Pure Go core – no cgo; the only runtime dep outside the CLI is yaml
//
// Quick ASCII example:
//
//	    Moscow ──(fairwind)── St Petersburg
//	       │ \
//	       │  ╰──(headwind)── Sochi
//	       ╰────── Kazan ── Samara ── Sochi
//
// Build an airspace.Topology, describe the aircraft with a planner.Profile,
// and ask a planner.Planner for the fastest feasible route; see the Example
// tests under planner/ for runnable snippets.
package flightroute
