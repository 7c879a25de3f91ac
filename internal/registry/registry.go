// Package registry holds the immutable airport and airline reference tables
// that drive network generation.
package registry

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRegistry = errors.New("invalid registry")
	ErrUnknownAirport  = errors.New("unknown airport")
	ErrUnknownAirline  = errors.New("unknown airline")
)

// Registry is a read-only view over airports and airlines.
// Iteration order is the order the tables were declared in.
type Registry struct {
	airports     []Airport
	airlines     []Airline
	airportIndex map[string]int
	airlineIndex map[string]int
}

// New validates the tables and builds a registry from them
func New(t Tables) (*Registry, error) {
	if err := validator.New().Struct(t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}

	r := &Registry{
		airports:     make([]Airport, len(t.Airports)),
		airlines:     make([]Airline, len(t.Airlines)),
		airportIndex: make(map[string]int, len(t.Airports)),
		airlineIndex: make(map[string]int, len(t.Airlines)),
	}
	copy(r.airports, t.Airports)
	copy(r.airlines, t.Airlines)

	for i, a := range r.airports {
		if _, dup := r.airportIndex[a.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate airport code %s", ErrInvalidRegistry, a.Code)
		}
		r.airportIndex[a.Code] = i
	}
	for i, a := range r.airlines {
		if _, dup := r.airlineIndex[a.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate airline code %s", ErrInvalidRegistry, a.Code)
		}
		r.airlineIndex[a.Code] = i
	}

	return r, nil
}

// Load decodes YAML reference tables from r
func Load(r io.Reader) (*Registry, error) {
	var t Tables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}
	return New(t)
}

// LoadFile reads YAML reference tables from path
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Airports returns the airports in declaration order
func (r *Registry) Airports() []Airport {
	out := make([]Airport, len(r.airports))
	copy(out, r.airports)
	return out
}

// Airlines returns the airlines in declaration order
func (r *Registry) Airlines() []Airline {
	out := make([]Airline, len(r.airlines))
	copy(out, r.airlines)
	return out
}

// NumAirports returns the number of airports
func (r *Registry) NumAirports() int { return len(r.airports) }

// NumAirlines returns the number of airlines
func (r *Registry) NumAirlines() int { return len(r.airlines) }

// Airport looks up an airport by code
func (r *Registry) Airport(code string) (Airport, bool) {
	i, ok := r.airportIndex[code]
	if !ok {
		return Airport{}, false
	}
	return r.airports[i], true
}

// Airline looks up an airline by code
func (r *Registry) Airline(code string) (Airline, bool) {
	i, ok := r.airlineIndex[code]
	if !ok {
		return Airline{}, false
	}
	return r.airlines[i], true
}

// MustAirport is like Airport but panics on an unknown code.
// Callers validate codes up front, so a miss here is a bug.
func (r *Registry) MustAirport(code string) Airport {
	a, ok := r.Airport(code)
	if !ok {
		panic(fmt.Sprintf("registry: %v: %s", ErrUnknownAirport, code))
	}
	return a
}

// MustAirline is like Airline but panics on an unknown code
func (r *Registry) MustAirline(code string) Airline {
	a, ok := r.Airline(code)
	if !ok {
		panic(fmt.Sprintf("registry: %v: %s", ErrUnknownAirline, code))
	}
	return a
}

// Require returns an error wrapping ErrUnknownAirport for the first code
// not present in the registry
func (r *Registry) Require(codes ...string) error {
	for _, c := range codes {
		if _, ok := r.airportIndex[c]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAirport, c)
		}
	}
	return nil
}

// RequireAirlines is the airline counterpart of Require
func (r *Registry) RequireAirlines(codes ...string) error {
	for _, c := range codes {
		if _, ok := r.airlineIndex[c]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAirline, c)
		}
	}
	return nil
}
