// Command flightroute plans minimum-time flight routes over a YAML route
// network, subject to tank capacity, wind and closed corridors.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "flightroute",
		Usage: "Plan minimum-time flight routes under fuel and wind constraints",
		Commands: []*cli.Command{
			planCommand(),
			locationsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
