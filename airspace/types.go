// Package airspace declares the Location, Connection and Wind types.
//
// This file holds the plain data types; the Topology container and its
// query methods live in topology.go.
package airspace

// Wind describes the wind condition along a Connection.
//
// The three conditions are mutually exclusive by construction: a Connection
// carries exactly one Wind value, so the "headwind and fairwind both set"
// caller error is unrepresentable.
type Wind uint8

const (
	// WindNone is calm air: no speed or consumption adjustment.
	WindNone Wind = iota

	// WindHead is a headwind: slower ground speed, higher consumption.
	WindHead

	// WindFair is a fairwind (tailwind): faster ground speed, lower consumption.
	WindFair
)

// String returns a human-readable wind label ("none", "headwind", "fairwind").
func (w Wind) String() string {
	switch w {
	case WindHead:
		return "headwind"
	case WindFair:
		return "fairwind"
	default:
		return "none"
	}
}

// Location represents a named point in the route network.
//
// Name uniquely identifies the Location within a Topology; equality and map
// keying are defined by Name alone. Lat and Lon are degrees on a spherical
// Earth model. HasFuel marks locations where a landing aircraft can refuel.
type Location struct {
	// Name is the unique identifier for this Location.
	Name string

	// Lat is the latitude in degrees.
	Lat float64

	// Lon is the longitude in degrees.
	Lon float64

	// HasFuel reports whether refueling service is available here.
	HasFuel bool
}

// Connection represents an undirected route segment between two Locations,
// referenced by name. A Connection is immutable after topology build time.
type Connection struct {
	// From is the name of one endpoint.
	From string

	// To is the name of the other endpoint.
	To string

	// DistanceKm is the segment length in kilometers (non-negative).
	DistanceKm float64

	// Wind is the wind condition along the segment.
	Wind Wind

	// Closed marks the segment as non-traversable.
	Closed bool
}

// Other returns the endpoint opposite to name, and true if name is one of
// the two endpoints. If name matches neither endpoint it returns ("", false).
func (c *Connection) Other(name string) (string, bool) {
	switch name {
	case c.From:
		return c.To, true
	case c.To:
		return c.From, true
	default:
		return "", false
	}
}

// Touches reports whether name is one of the Connection's endpoints.
func (c *Connection) Touches(name string) bool {
	return c.From == name || c.To == name
}
