package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/flightroute/airspace"
	"github.com/katalvlaran/flightroute/planner"
	"github.com/katalvlaran/flightroute/routefile"
)

func planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Plan the fastest feasible route between two locations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "routes",
				Usage:    "Route network YAML file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "from",
				Usage:    "Departure location name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Destination location name",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "legs",
				Usage: "Print the per-leg time and fuel breakdown",
			},
			&cli.IntFlag{
				Name:  "max-frontier",
				Usage: "Abort the search once the frontier exceeds this many states",
			},
			&cli.IntFlag{
				Name:  "max-expansions",
				Usage: "Abort the search after this many state expansions",
			},
		},
		Action: planAction,
	}
}

func planAction(c *cli.Context) error {
	topo, profile, err := routefile.Load(c.String("routes"))
	if err != nil {
		return err
	}

	var opts []planner.Option
	if c.Int("max-frontier") > 0 {
		opts = append(opts, planner.WithMaxFrontier(c.Int("max-frontier")))
	}
	if c.Int("max-expansions") > 0 {
		opts = append(opts, planner.WithMaxExpansions(c.Int("max-expansions")))
	}

	pl, err := planner.New(topo, profile, opts...)
	if err != nil {
		return err
	}

	it, err := pl.Search(c.String("from"), c.String("to"))
	if err != nil {
		return err
	}

	fmt.Printf("Route: %s\n", strings.Join(it.Route, " -> "))
	fmt.Printf("Total time: %.2f h\n", it.TotalTimeHours)
	fmt.Printf("Total distance: %d km\n", it.TotalDistanceKm)
	fmt.Printf("Refuels en route: %d\n", it.RefuelCount)
	if len(it.RefuelStops) > 0 {
		fmt.Printf("Fuel-capable stops: %s\n", strings.Join(it.RefuelStops, ", "))
	}

	if c.Bool("legs") {
		printLegs(topo, profile, it)
	}

	return nil
}

// printLegs prints the per-leg breakdown of the itinerary. Each leg is
// evaluated from a full tank, so the figures describe the leg in isolation
// rather than the tank state of the actual flight.
func printLegs(topo *airspace.Topology, profile planner.Profile, it *planner.Itinerary) {
	fmt.Println()
	for i := 0; i+1 < len(it.Route); i++ {
		from, to := it.Route[i], it.Route[i+1]
		conn, ok := topo.ConnectionBetween(from, to)
		if !ok {
			continue
		}
		timeHours, fuel, ok := profile.EdgeCost(conn, profile.TankCapacity)
		if !ok {
			continue
		}
		fmt.Printf("%s -> %s: %.1f h, %d L\n", from, to, timeHours, fuel)

		// Annotate intermediate fuel stops; the final destination keeps the
		// aircraft on the ground anyway.
		if loc, ok := topo.Location(to); ok && loc.HasFuel && i+2 < len(it.Route) {
			fmt.Printf("  [refuel at %s] +0.5 h\n", to)
		}
	}
}
