package network

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tordrt/flightseed/internal/registry"
)

func TestCounter(t *testing.T) {
	c := NewCounter(DemoCounterStart)

	assert.Equal(t, 1000, c.Next())
	assert.Equal(t, 1001, c.Next())

	c.AdvanceTo(BulkCounterStart)
	assert.Equal(t, 2000, c.Next())

	c.AdvanceTo(1500)
	assert.Equal(t, 2001, c.Next(), "counter must never move backwards")
	assert.Equal(t, 2002, c.Peek())
}

func TestFlightNumber(t *testing.T) {
	assert.Equal(t, "6E1000", FlightNumber("6E", 1000))
	assert.Equal(t, "AI0042", FlightNumber("AI", 42))
	assert.Equal(t, "UK12345", FlightNumber("UK", 12345))
}

func TestConnectivityProbability(t *testing.T) {
	tests := []struct {
		src, dst registry.Tier
		want     float64
	}{
		{1, 1, 0.70},
		{1, 2, 0.70},
		{1, 3, 0},
		{2, 1, 0.70},
		{2, 2, 0.30},
		{2, 3, 0},
		{3, 1, 0.20},
		{3, 2, 0.20},
		{3, 3, 0.05},
	}

	var c Connectivity
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Probability(tt.src, tt.dst), "tier %d -> %d", tt.src, tt.dst)
	}
}

func TestConnectivityConnected(t *testing.T) {
	var c Connectivity
	hub := registry.Airport{Code: "AAA", Tier: registry.TierHub}
	hub2 := registry.Airport{Code: "BBB", Tier: registry.TierHub}
	regional := registry.Airport{Code: "CCC", Tier: registry.TierRegional}

	assert.True(t, c.Connected(stubRand{float64: 0.69}, hub, hub2))
	assert.False(t, c.Connected(stubRand{float64: 0.70}, hub, hub2))
	assert.False(t, c.Connected(stubRand{float64: 0}, hub, hub), "self pairs never connect")
	assert.False(t, c.Connected(stubRand{float64: 0}, hub, regional), "hub to regional never connects")
	assert.True(t, c.Connected(stubRand{float64: 0.04}, regional, registry.Airport{Code: "DDD", Tier: registry.TierRegional}))
}

func TestConnectivityFlightRange(t *testing.T) {
	var c Connectivity

	assert.Equal(t, Range{2, 4}, c.FlightRange(1, 1))
	assert.Equal(t, Range{1, 3}, c.FlightRange(1, 2))
	assert.Equal(t, Range{1, 3}, c.FlightRange(2, 2))
	assert.Equal(t, Range{1, 2}, c.FlightRange(3, 1))
	assert.Equal(t, Range{1, 2}, c.FlightRange(3, 3))

	a := registry.Airport{Code: "AAA", Tier: 1}
	b := registry.Airport{Code: "BBB", Tier: 1}
	assert.Equal(t, 2, c.Flights(stubRand{intn: 0}, a, b))
	assert.Equal(t, 4, c.Flights(stubRand{intn: 99}, a, b))
}

func TestPricingBands(t *testing.T) {
	var p Pricing

	assert.Equal(t, Range{3000, 6000}, p.DistanceBand(1, 1))
	assert.Equal(t, Range{2000, 4000}, p.DistanceBand(1, 2))
	assert.Equal(t, Range{2000, 4000}, p.DistanceBand(2, 2))
	assert.Equal(t, Range{1500, 3000}, p.DistanceBand(3, 1))
	assert.Equal(t, Range{1500, 3000}, p.DistanceBand(2, 3))

	assert.Equal(t, Range{120, 180}, p.DurationBounds(1, 1))
	assert.Equal(t, Range{90, 150}, p.DurationBounds(2, 1))
	assert.Equal(t, Range{60, 120}, p.DurationBounds(3, 3))

	lo, hi := p.CostBounds(1, 1, 1.1)
	assert.InDelta(t, 5500.0, lo, 1e-9)
	assert.InDelta(t, 8800.0, hi, 1e-9)
}

func TestPricingCost(t *testing.T) {
	var p Pricing
	indigo := registry.Airline{Code: "6E", CostFactor: 0.9}

	assert.InDelta(t, 4500.0, p.Cost(stubRand{intn: 0}, 1, 1, indigo), 1e-9)
	assert.InDelta(t, 3150.0, p.Cost(stubRand{intn: 0}, 3, 3, registry.Airline{CostFactor: 0.9}), 1e-9)

	r := NewRand(7)
	for range 1000 {
		cost := p.Cost(r, 2, 2, registry.Airline{CostFactor: 0.85})
		lo, hi := p.CostBounds(2, 2, 0.85)
		assert.GreaterOrEqual(t, cost, lo)
		assert.LessOrEqual(t, cost, hi)
		assert.Equal(t, RoundCost(cost), cost)
	}
}

func TestRoundCost(t *testing.T) {
	assert.Equal(t, 4767.15, RoundCost(4767.1499999))
	assert.Equal(t, 3060.0, RoundCost(3600*0.85))
	assert.Equal(t, 1.01, RoundCost(1.005000001))
}

func TestDrawSeats(t *testing.T) {
	r := NewRand(3)
	for range 1000 {
		available, booked := drawSeats(r)
		assert.Contains(t, Capacities, available+booked)
		assert.GreaterOrEqual(t, available, 10)
		assert.GreaterOrEqual(t, booked, 20)
	}
}
