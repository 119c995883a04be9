package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/flightroute/routefile"
)

func locationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "locations",
		Usage: "List the locations and connections of a route network",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "routes",
				Usage:    "Route network YAML file",
				Required: true,
			},
		},
		Action: locationsAction,
	}
}

func locationsAction(c *cli.Context) error {
	topo, profile, err := routefile.Load(c.String("routes"))
	if err != nil {
		return err
	}

	fmt.Printf("Aircraft: tank %d L, %.2f L/km, cruise %.0f km/h\n\n",
		profile.TankCapacity, profile.Consumption, profile.CruiseSpeed)

	fmt.Println("Locations:")
	for _, name := range topo.Locations() {
		loc, _ := topo.Location(name)
		fuel := ""
		if loc.HasFuel {
			fuel = "  [fuel]"
		}
		fmt.Printf("  %-16s %9.4f, %9.4f%s\n", loc.Name, loc.Lat, loc.Lon, fuel)
	}

	fmt.Println("\nConnections:")
	for _, conn := range topo.Connections() {
		status := ""
		if conn.Closed {
			status = "  [closed]"
		}
		fmt.Printf("  %s — %s: %.0f km, %s%s\n", conn.From, conn.To, conn.DistanceKm, conn.Wind, status)
	}

	return nil
}
