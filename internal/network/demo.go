package network

import (
	"errors"
	"fmt"

	"github.com/tordrt/flightseed/internal/registry"
)

// ErrInvalidPlan is returned when a demo plan cannot guarantee its routes
var ErrInvalidPlan = errors.New("invalid demo plan")

// DirectCopies is how many edges each direct catalog entry produces
const DirectCopies = 2

// DirectFare is a catalog entry for the nonstop demo flights
type DirectFare struct {
	Airline  string
	Cost     float64
	Duration int
}

// Window is a closed range of departure times
type Window struct {
	From TimeOfDay
	To   TimeOfDay
}

// StopPair names the two intermediate airports of a two-stop chain
type StopPair struct {
	First  string
	Second string
}

// ChainLeg describes one leg of every two-stop chain
type ChainLeg struct {
	Airline  string
	Depart   TimeOfDay
	Cost     Range
	Duration Range
}

// DemoPlan describes the guaranteed subgraph between Origin and Destination
type DemoPlan struct {
	Origin      string
	Destination string

	Direct         []DirectFare
	CostJitter     Range
	DurationJitter Range

	Hubs             []string
	InboundAirlines  []string // origin to hub
	OutboundAirlines []string // hub to destination
	InboundWindow    Window
	OutboundWindow   Window

	Chains []StopPair
	Legs   [3]ChainLeg
	// Stagger shifts every leg anchor of chain i by i*Stagger minutes
	Stagger int
}

// DefaultDemoPlan is the AMD to BLR plan
func DefaultDemoPlan() DemoPlan {
	return DemoPlan{
		Origin:      "AMD",
		Destination: "BLR",
		Direct: []DirectFare{
			{Airline: "6E", Cost: 3800, Duration: 150},
			{Airline: "AI", Cost: 4500, Duration: 145},
			{Airline: "UK", Cost: 5200, Duration: 140},
			{Airline: "SG", Cost: 3600, Duration: 155},
		},
		CostJitter:     Range{-300, 500},
		DurationJitter: Range{-10, 20},

		Hubs:             []string{"BOM", "DEL", "HYD", "MAA"},
		InboundAirlines:  []string{"6E", "AI", "UK"},
		OutboundAirlines: []string{"6E", "SG", "AI"},
		InboundWindow:    Window{From: Clock(6, 0), To: Clock(11, 0)},
		OutboundWindow:   Window{From: Clock(15, 0), To: Clock(22, 0)},

		Chains: []StopPair{
			{First: "BOM", Second: "HYD"},
			{First: "DEL", Second: "CCU"},
			{First: "HYD", Second: "MAA"},
			{First: "BOM", Second: "GOI"},
		},
		Legs: [3]ChainLeg{
			{Airline: "6E", Depart: Clock(6, 0), Cost: Range{1800, 3200}, Duration: Range{60, 150}},
			{Airline: "AI", Depart: Clock(10, 0), Cost: Range{2000, 3500}, Duration: Range{60, 150}},
			{Airline: "UK", Depart: Clock(14, 0), Cost: Range{1800, 3000}, Duration: Range{60, 150}},
		},
		Stagger: 30,
	}
}

// LegDeparture returns the anchor departure of leg k in chain i
func (p DemoPlan) LegDeparture(chain, leg int) TimeOfDay {
	return p.Legs[leg].Depart.Add(chain * p.Stagger)
}

// Validate checks the plan against the registry and confirms every
// connection the plan promises is reachable on the clock.
func (p DemoPlan) Validate(reg *registry.Registry, sched *Scheduler) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, fmt.Sprintf(format, args...))
	}

	if p.Origin == p.Destination {
		return invalid("origin and destination are both %s", p.Origin)
	}
	if err := reg.Require(p.Origin, p.Destination); err != nil {
		return err
	}
	if err := reg.Require(p.Hubs...); err != nil {
		return err
	}
	for _, c := range p.Chains {
		if err := reg.Require(c.First, c.Second); err != nil {
			return err
		}
	}

	airlines := append([]string{}, p.InboundAirlines...)
	airlines = append(airlines, p.OutboundAirlines...)
	for _, d := range p.Direct {
		airlines = append(airlines, d.Airline)
	}
	for _, l := range p.Legs {
		airlines = append(airlines, l.Airline)
	}
	if err := reg.RequireAirlines(airlines...); err != nil {
		return err
	}

	if len(p.Direct) == 0 {
		return invalid("no direct fares")
	}
	if p.CostJitter.Max < p.CostJitter.Min || p.DurationJitter.Max < p.DurationJitter.Min || p.Stagger < 0 {
		return invalid("jitter or stagger out of order")
	}
	for _, d := range p.Direct {
		if d.Cost+float64(p.CostJitter.Min) <= 0 || d.Duration+p.DurationJitter.Min <= 0 {
			return invalid("direct fare %s can jitter to a non-positive value", d.Airline)
		}
	}

	if len(p.Hubs) > 0 {
		if len(p.InboundAirlines) == 0 || len(p.OutboundAirlines) == 0 {
			return invalid("hubs need inbound and outbound airlines")
		}
		if !sched.HasSlotBetween(p.InboundWindow.From, p.InboundWindow.To) ||
			!sched.HasSlotBetween(p.OutboundWindow.From, p.OutboundWindow.To) {
			return invalid("connection window holds no departure slot")
		}
	}
	origin := reg.MustAirport(p.Origin)
	for _, code := range p.Hubs {
		if code == p.Origin || code == p.Destination {
			return invalid("hub %s is an endpoint", code)
		}
		hub := reg.MustAirport(code)
		latest := p.InboundWindow.To.Add(Pricing{}.DurationBounds(origin.Tier, hub.Tier).Max)
		if latest.Before(p.InboundWindow.To) || !latest.Before(p.OutboundWindow.From) {
			return invalid("hub %s: inbound flights can arrive after outbound departures", code)
		}
	}

	for i, c := range p.Chains {
		stops := []string{p.Origin, c.First, c.Second, p.Destination}
		seen := map[string]bool{}
		for _, s := range stops {
			if seen[s] {
				return invalid("chain %s-%s repeats %s", c.First, c.Second, s)
			}
			seen[s] = true
		}

		for leg := range p.Legs {
			l := p.Legs[leg]
			if l.Cost.Min <= 0 || l.Duration.Min <= 0 || l.Cost.Max < l.Cost.Min || l.Duration.Max < l.Duration.Min {
				return invalid("leg %d has an invalid range", leg+1)
			}
			dep := p.LegDeparture(i, leg)
			if dep.Minutes()+l.Duration.Max >= 24*60 {
				return invalid("chain %s-%s leg %d arrives after midnight", c.First, c.Second, leg+1)
			}
			if leg+1 < len(p.Legs) {
				arrival := dep.Add(l.Duration.Max)
				if !arrival.Before(p.LegDeparture(i, leg+1)) {
					return invalid("chain %s-%s leg %d can miss leg %d", c.First, c.Second, leg+1, leg+2)
				}
			}
		}
	}

	return nil
}

// DemoBuilder materializes a validated DemoPlan
type DemoBuilder struct {
	plan     DemoPlan
	registry *registry.Registry
	sched    *Scheduler
	pricing  Pricing
}

// NewDemoBuilder validates plan and returns a builder for it
func NewDemoBuilder(plan DemoPlan, reg *registry.Registry, sched *Scheduler) (*DemoBuilder, error) {
	if err := plan.Validate(reg, sched); err != nil {
		return nil, err
	}
	return &DemoBuilder{plan: plan, registry: reg, sched: sched}, nil
}

// Build generates the demo edges: direct flights, then one-stop legs, then
// two-stop chains. Flight numbers come from counter.
func (b *DemoBuilder) Build(r Rand, counter *Counter) []FlightEdge {
	var edges []FlightEdge
	edges = append(edges, b.direct(r, counter)...)
	edges = append(edges, b.oneStop(r, counter)...)
	edges = append(edges, b.twoStop(r, counter)...)
	return edges
}

func (b *DemoBuilder) direct(r Rand, counter *Counter) []FlightEdge {
	p := b.plan
	edges := make([]FlightEdge, 0, len(p.Direct)*DirectCopies)
	for _, fare := range p.Direct {
		for range DirectCopies {
			cost := RoundCost(fare.Cost + float64(p.CostJitter.draw(r)))
			duration := fare.Duration + p.DurationJitter.draw(r)
			dep := b.sched.Departure(r)
			edges = append(edges, newEdge(r, counter, fare.Airline, p.Origin, p.Destination, cost, duration, dep, b.sched, ClassDirect))
		}
	}
	return edges
}

func (b *DemoBuilder) oneStop(r Rand, counter *Counter) []FlightEdge {
	p := b.plan
	var edges []FlightEdge
	for _, hub := range p.Hubs {
		for _, code := range p.InboundAirlines {
			dep := b.sched.DepartureBetween(r, p.InboundWindow.From, p.InboundWindow.To)
			edges = append(edges, b.priced(r, counter, code, p.Origin, hub, dep))
		}
		for _, code := range p.OutboundAirlines {
			dep := b.sched.DepartureBetween(r, p.OutboundWindow.From, p.OutboundWindow.To)
			edges = append(edges, b.priced(r, counter, code, hub, p.Destination, dep))
		}
	}
	return edges
}

// priced builds a one-stop leg using the tier-pair bands
func (b *DemoBuilder) priced(r Rand, counter *Counter, airline, src, dst string, dep TimeOfDay) FlightEdge {
	from := b.registry.MustAirport(src)
	to := b.registry.MustAirport(dst)
	cost := b.pricing.Cost(r, from.Tier, to.Tier, b.registry.MustAirline(airline))
	duration := b.pricing.Duration(r, from.Tier, to.Tier)
	return newEdge(r, counter, airline, src, dst, cost, duration, dep, b.sched, ClassOneStop)
}

func (b *DemoBuilder) twoStop(r Rand, counter *Counter) []FlightEdge {
	p := b.plan
	edges := make([]FlightEdge, 0, len(p.Chains)*len(p.Legs))
	for i, chain := range p.Chains {
		stops := [4]string{p.Origin, chain.First, chain.Second, p.Destination}
		for leg, spec := range p.Legs {
			cost := RoundCost(float64(spec.Cost.draw(r)))
			duration := spec.Duration.draw(r)
			edges = append(edges, newEdge(r, counter, spec.Airline, stops[leg], stops[leg+1], cost, duration, p.LegDeparture(i, leg), b.sched, ClassTwoStop))
		}
	}
	return edges
}

func newEdge(r Rand, counter *Counter, airline, src, dst string, cost float64, duration int, dep TimeOfDay, sched *Scheduler, class Class) FlightEdge {
	available, booked := drawSeats(r)
	return FlightEdge{
		FlightNumber:   FlightNumber(airline, counter.Next()),
		Source:         src,
		Destination:    dst,
		Cost:           cost,
		Duration:       duration,
		AvailableSeats: available,
		BookedSeats:    booked,
		Status:         StatusScheduled,
		DepartureTime:  dep,
		ArrivalTime:    sched.Arrival(dep, duration),
		Airline:        airline,
		Class:          class,
	}
}
