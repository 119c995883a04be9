// Package planner_test provides runnable examples for the route search.
// Each example is runnable via “go test -run Example”, showing both code and
// expected output.
package planner_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flightroute/airspace"
	"github.com/katalvlaran/flightroute/planner"
)

// ExamplePlanner_Search plans the reference five-city scenario: the direct
// headwind leg to Sochi beats every multi-hop alternative once refuel delays
// are charged.
func ExamplePlanner_Search() {
	// 1) Describe the network: five cities, six corridors. Sochi has no
	//    refueling service; St Petersburg–Kazan is closed.
	topo := airspace.NewTopology()
	topo.AddLocation(&airspace.Location{Name: "Moscow", Lat: 55.7558, Lon: 37.6173, HasFuel: true})
	topo.AddLocation(&airspace.Location{Name: "St Petersburg", Lat: 59.9343, Lon: 30.3351, HasFuel: true})
	topo.AddLocation(&airspace.Location{Name: "Kazan", Lat: 55.8304, Lon: 49.0661, HasFuel: true})
	topo.AddLocation(&airspace.Location{Name: "Sochi", Lat: 43.5855, Lon: 39.7231})
	topo.AddLocation(&airspace.Location{Name: "Samara", Lat: 53.1959, Lon: 50.1002, HasFuel: true})

	topo.AddConnection(&airspace.Connection{From: "Moscow", To: "St Petersburg", DistanceKm: 650, Wind: airspace.WindFair})
	topo.AddConnection(&airspace.Connection{From: "Moscow", To: "Kazan", DistanceKm: 720})
	topo.AddConnection(&airspace.Connection{From: "Moscow", To: "Sochi", DistanceKm: 1360, Wind: airspace.WindHead})
	topo.AddConnection(&airspace.Connection{From: "Kazan", To: "Samara", DistanceKm: 450})
	topo.AddConnection(&airspace.Connection{From: "St Petersburg", To: "Kazan", DistanceKm: 1150, Closed: true})
	topo.AddConnection(&airspace.Connection{From: "Samara", To: "Sochi", DistanceKm: 1250})

	// 2) Describe the aircraft: 16 000 L tank, 2.7 L/km, 841 km/h cruise.
	profile := planner.Profile{TankCapacity: 16000, Consumption: 2.7, CruiseSpeed: 841}

	// 3) Bind the planner and search.
	pl, err := planner.New(topo, profile)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	it, err := pl.Search("Moscow", "Sochi")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Print the plan.
	fmt.Printf("route: %s\n", strings.Join(it.Route, " -> "))
	fmt.Printf("time: %.2f h\n", it.TotalTimeHours)
	fmt.Printf("distance: %d km\n", it.TotalDistanceKm)
	fmt.Printf("refuels: %d\n", it.RefuelCount)
	// Output:
	// route: Moscow -> Sochi
	// time: 2.10 h
	// distance: 1360 km
	// refuels: 0
}

// ExamplePlanner_Search_refuel shows the mandatory refuel rule: a
// fuel-capable stop tops the tank up and charges a fixed half-hour delay,
// which is what makes the second leg feasible at all.
func ExamplePlanner_Search_refuel() {
	topo := airspace.NewTopology()
	topo.AddLocation(&airspace.Location{Name: "A"})
	topo.AddLocation(&airspace.Location{Name: "B", Lon: 1, HasFuel: true})
	topo.AddLocation(&airspace.Location{Name: "C", Lon: 2})
	topo.AddConnection(&airspace.Connection{From: "A", To: "B", DistanceKm: 100})
	topo.AddConnection(&airspace.Connection{From: "B", To: "C", DistanceKm: 100})

	// The 150 L tank cannot cover both 100 L legs without the top-up at B.
	profile := planner.Profile{TankCapacity: 150, Consumption: 1, CruiseSpeed: 100}

	pl, err := planner.New(topo, profile)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	it, err := pl.Search("A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("route: %s\n", strings.Join(it.Route, " -> "))
	fmt.Printf("time: %.2f h (includes one 0.5 h refuel)\n", it.TotalTimeHours)
	fmt.Printf("refuels: %d at %s\n", it.RefuelCount, strings.Join(it.RefuelStops, ", "))
	// Output:
	// route: A -> B -> C
	// time: 2.50 h (includes one 0.5 h refuel)
	// refuels: 1 at B
}
