package report

import "github.com/tordrt/flightseed/internal/network"

// Report is the structured result of a seed or verify run
type Report struct {
	// Skipped is set when the store already held flights
	Skipped bool
	// Generated summarizes the network written by this run; nil when skipped
	Generated *network.Summary
	// Stored is the flight count in the store after the run
	Stored int64
	// Sample holds the first flights ordered by flight number
	Sample []network.FlightEdge
	Routes []Route
}

// Route is a designated origin and destination pair
type Route struct {
	Source      string
	Destination string
	Flights     []network.FlightEdge
}

// Name returns the route as SRC-DST
func (r Route) Name() string { return r.Source + "-" + r.Destination }
