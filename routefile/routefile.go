package routefile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flightroute/airspace"
	"github.com/katalvlaran/flightroute/planner"
)

// Sentinel errors for route-file parsing.
var (
	// ErrUnknownWind indicates a wind label other than "", "none",
	// "headwind" or "fairwind".
	ErrUnknownWind = errors.New("routefile: unknown wind condition")

	// ErrBadDistance indicates a negative connection distance.
	ErrBadDistance = errors.New("routefile: connection distance must be non-negative")

	// ErrBadAircraft indicates a non-positive tank capacity, consumption,
	// or cruise speed.
	ErrBadAircraft = errors.New("routefile: aircraft parameters must be positive")
)

// File is the top-level YAML document.
type File struct {
	Aircraft    AircraftSpec     `yaml:"aircraft"`
	Locations   []LocationSpec   `yaml:"locations"`
	Connections []ConnectionSpec `yaml:"connections"`
}

// AircraftSpec describes the aircraft profile.
type AircraftSpec struct {
	TankCapacityL     int     `yaml:"tank_capacity_l"`
	ConsumptionLPerKm float64 `yaml:"consumption_l_per_km"`
	CruiseSpeedKmh    float64 `yaml:"cruise_speed_kmh"`
}

// LocationSpec describes one named location.
type LocationSpec struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	Fuel bool    `yaml:"fuel"`
}

// ConnectionSpec describes one undirected connection.
type ConnectionSpec struct {
	From       string  `yaml:"from"`
	To         string  `yaml:"to"`
	DistanceKm float64 `yaml:"distance_km"`
	Wind       string  `yaml:"wind"`
	Closed     bool    `yaml:"closed"`
}

// Load reads and parses the route file at path.
func Load(path string) (*airspace.Topology, planner.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, planner.Profile{}, fmt.Errorf("routefile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML route document into a Topology and a Profile.
//
// Locations are added in document order, so the "last write wins" rule of
// the topology applies to duplicate names; connections keep their document
// order, which the planner relies on for first-match distance lookups.
func Parse(data []byte) (*airspace.Topology, planner.Profile, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, planner.Profile{}, fmt.Errorf("routefile: decode: %w", err)
	}

	profile, err := f.Aircraft.profile()
	if err != nil {
		return nil, planner.Profile{}, err
	}

	topo := airspace.NewTopology()
	for _, l := range f.Locations {
		topo.AddLocation(&airspace.Location{
			Name:    l.Name,
			Lat:     l.Lat,
			Lon:     l.Lon,
			HasFuel: l.Fuel,
		})
	}
	for i, c := range f.Connections {
		wind, err := parseWind(c.Wind)
		if err != nil {
			return nil, planner.Profile{}, fmt.Errorf("%w (connection %d: %s–%s)", err, i, c.From, c.To)
		}
		if c.DistanceKm < 0 {
			return nil, planner.Profile{}, fmt.Errorf("%w (connection %d: %s–%s)", ErrBadDistance, i, c.From, c.To)
		}
		topo.AddConnection(&airspace.Connection{
			From:       c.From,
			To:         c.To,
			DistanceKm: c.DistanceKm,
			Wind:       wind,
			Closed:     c.Closed,
		})
	}

	return topo, profile, nil
}

// profile converts the aircraft spec, rejecting degenerate values that would
// make every edge infeasible.
func (a AircraftSpec) profile() (planner.Profile, error) {
	if a.TankCapacityL <= 0 || a.ConsumptionLPerKm <= 0 || a.CruiseSpeedKmh <= 0 {
		return planner.Profile{}, fmt.Errorf("%w: tank=%d consumption=%g speed=%g",
			ErrBadAircraft, a.TankCapacityL, a.ConsumptionLPerKm, a.CruiseSpeedKmh)
	}

	return planner.Profile{
		TankCapacity: a.TankCapacityL,
		Consumption:  a.ConsumptionLPerKm,
		CruiseSpeed:  a.CruiseSpeedKmh,
	}, nil
}

// parseWind maps a YAML wind label to its airspace.Wind value.
func parseWind(s string) (airspace.Wind, error) {
	switch s {
	case "", "none":
		return airspace.WindNone, nil
	case "headwind":
		return airspace.WindHead, nil
	case "fairwind":
		return airspace.WindFair, nil
	default:
		return airspace.WindNone, fmt.Errorf("%w: %q", ErrUnknownWind, s)
	}
}
