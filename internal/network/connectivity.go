package network

import (
	"github.com/tordrt/flightseed/internal/registry"
)

// Connectivity decides which airport pairs get direct flights and how many
type Connectivity struct{}

// Probability returns the chance of a direct route from a tier-src airport
// to a tier-dst airport
func (Connectivity) Probability(src, dst registry.Tier) float64 {
	switch {
	case src == registry.TierHub && dst <= registry.TierSecondary:
		return 0.70
	case src == registry.TierSecondary && dst == registry.TierHub:
		return 0.70
	case src == registry.TierSecondary && dst == registry.TierSecondary:
		return 0.30
	case src == registry.TierRegional && dst <= registry.TierSecondary:
		return 0.20
	case src == registry.TierRegional && dst == registry.TierRegional:
		return 0.05
	}
	return 0
}

// Connected draws whether src and dst are directly connected.
// Self-pairs never are.
func (c Connectivity) Connected(r Rand, src, dst registry.Airport) bool {
	if src.Code == dst.Code {
		return false
	}

	p := c.Probability(src.Tier, dst.Tier)
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.Float64() < p
}

// FlightRange returns the bounds on parallel flights for a tier pair
func (Connectivity) FlightRange(src, dst registry.Tier) Range {
	switch {
	case src == registry.TierHub && dst == registry.TierHub:
		return Range{2, 4}
	case src <= registry.TierSecondary && dst <= registry.TierSecondary:
		return Range{1, 3}
	}
	return Range{1, 2}
}

// Flights draws the number of parallel flights for a connected pair
func (c Connectivity) Flights(r Rand, src, dst registry.Airport) int {
	return c.FlightRange(src.Tier, dst.Tier).draw(r)
}
