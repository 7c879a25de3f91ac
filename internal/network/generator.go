// Package network generates synthetic flight networks for exercising
// route-search algorithms.
//
// A run has two phases. The demo phase builds a fixed-shape subgraph between
// a designated origin and destination, so that direct, one-stop and two-stop
// itineraries exist for any random seed. The bulk phase sweeps every ordered
// airport pair and connects it with a tier-dependent probability.
//
//	gen, err := network.NewGenerator(registry.Default(), network.DefaultDemoPlan(), nil)
//	if err != nil {
//		return err
//	}
//	net := gen.Generate(network.SystemRand())
//	fmt.Println(net.Summary.Total)
package network

import (
	"github.com/tordrt/flightseed/internal/registry"
)

// Summary counts the edges of a generated network
type Summary struct {
	Airports int
	Airlines int
	Direct   int
	OneStop  int
	TwoStop  int
	Bulk     int
	// BulkRoutes is the number of connected pairs in the bulk sweep
	BulkRoutes int
	Total      int
}

// Network is the output of one generation run, demo edges first
type Network struct {
	Edges   []FlightEdge
	Summary Summary
}

// Between returns the edges flying src to dst, in generation order
func (n *Network) Between(src, dst string) []FlightEdge {
	var out []FlightEdge
	for _, e := range n.Edges {
		if e.Source == src && e.Destination == dst {
			out = append(out, e)
		}
	}
	return out
}

// Generator produces flight networks over a registry
type Generator struct {
	registry     *registry.Registry
	sched        *Scheduler
	connectivity Connectivity
	pricing      Pricing
	demo         *DemoBuilder
}

// NewGenerator validates plan against reg. A nil sched uses DefaultSlots.
func NewGenerator(reg *registry.Registry, plan DemoPlan, sched *Scheduler) (*Generator, error) {
	if sched == nil {
		sched = NewScheduler(DefaultSlots)
	}

	demo, err := NewDemoBuilder(plan, reg, sched)
	if err != nil {
		return nil, err
	}

	return &Generator{
		registry: reg,
		sched:    sched,
		demo:     demo,
	}, nil
}

// Generate runs the demo phase and then the bulk sweep
func (g *Generator) Generate(r Rand) *Network {
	counter := NewCounter(DemoCounterStart)

	edges := g.demo.Build(r, counter)
	counter.AdvanceTo(BulkCounterStart)

	bulk, routes := g.sweep(r, counter)
	edges = append(edges, bulk...)

	n := &Network{Edges: edges}
	n.Summary = summarize(edges)
	n.Summary.Airports = g.registry.NumAirports()
	n.Summary.Airlines = g.registry.NumAirlines()
	n.Summary.BulkRoutes = routes
	return n
}

// sweep visits every ordered pair of distinct airports
func (g *Generator) sweep(r Rand, counter *Counter) ([]FlightEdge, int) {
	airports := g.registry.Airports()
	airlines := g.registry.Airlines()

	var edges []FlightEdge
	routes := 0
	for _, src := range airports {
		for _, dst := range airports {
			if src.Code == dst.Code {
				continue
			}
			if !g.connectivity.Connected(r, src, dst) {
				continue
			}
			routes++

			n := g.connectivity.Flights(r, src, dst)
			for range n {
				airline := airlines[r.IntN(len(airlines))]
				dep := g.sched.Departure(r)
				duration := g.pricing.Duration(r, src.Tier, dst.Tier)
				cost := g.pricing.Cost(r, src.Tier, dst.Tier, airline)
				edges = append(edges, newEdge(r, counter, airline.Code, src.Code, dst.Code, cost, duration, dep, g.sched, ClassBulk))
			}
		}
	}
	return edges, routes
}

func summarize(edges []FlightEdge) Summary {
	var s Summary
	for _, e := range edges {
		switch e.Class {
		case ClassDirect:
			s.Direct++
		case ClassOneStop:
			s.OneStop++
		case ClassTwoStop:
			s.TwoStop++
		case ClassBulk:
			s.Bulk++
		}
	}
	s.Total = len(edges)
	return s
}
