package network

import (
	"math"

	"github.com/tordrt/flightseed/internal/registry"
)

// BaseFare is added to every distance band before the airline factor
const BaseFare = 2000

type bandClass int

const (
	bandHubToHub bandClass = iota
	bandMainline
	bandRegional
)

func classify(src, dst registry.Tier) bandClass {
	switch {
	case src == registry.TierHub && dst == registry.TierHub:
		return bandHubToHub
	case src <= registry.TierSecondary && dst <= registry.TierSecondary:
		return bandMainline
	}
	return bandRegional
}

var (
	distanceBands = map[bandClass]Range{
		bandHubToHub: {3000, 6000},
		bandMainline: {2000, 4000},
		bandRegional: {1500, 3000},
	}
	durationBands = map[bandClass]Range{
		bandHubToHub: {120, 180},
		bandMainline: {90, 150},
		bandRegional: {60, 120},
	}
)

// Pricing derives cost and block time from the tier pair and airline
type Pricing struct{}

// DistanceBand returns the range the distance component is drawn from
func (Pricing) DistanceBand(src, dst registry.Tier) Range {
	return distanceBands[classify(src, dst)]
}

// DurationBounds returns the range durations are drawn from, in minutes
func (Pricing) DurationBounds(src, dst registry.Tier) Range {
	return durationBands[classify(src, dst)]
}

// CostBounds returns the lowest and highest cost an airline can be charged
// on a tier pair, after rounding
func (p Pricing) CostBounds(src, dst registry.Tier, factor float64) (lo, hi float64) {
	band := p.DistanceBand(src, dst)
	return RoundCost(float64(BaseFare+band.Min) * factor), RoundCost(float64(BaseFare+band.Max) * factor)
}

// Cost draws a fare for the tier pair
func (p Pricing) Cost(r Rand, src, dst registry.Tier, airline registry.Airline) float64 {
	band := p.DistanceBand(src, dst).draw(r)
	return RoundCost(float64(BaseFare+band) * airline.CostFactor)
}

// Duration draws a block time in minutes for the tier pair
func (p Pricing) Duration(r Rand, src, dst registry.Tier) int {
	return p.DurationBounds(src, dst).draw(r)
}

// RoundCost rounds to two decimal places
func RoundCost(v float64) float64 {
	return math.Round(v*100) / 100
}
