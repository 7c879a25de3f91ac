package registry

// Tier classifies an airport's traffic importance
type Tier int

const (
	TierHub       Tier = 1 // major hub
	TierSecondary Tier = 2
	TierRegional  Tier = 3
)

// Airport represents a single airport in the network
type Airport struct {
	Code string `yaml:"code" validate:"required,alphanum,min=3,max=4"`
	City string `yaml:"city" validate:"required"`
	Tier Tier   `yaml:"tier" validate:"oneof=1 2 3"`
}

// Airline represents an operating carrier
type Airline struct {
	Code       string  `yaml:"code" validate:"required,alphanum,len=2"`
	Name       string  `yaml:"name" validate:"required"`
	CostFactor float64 `yaml:"cost_factor" validate:"gt=0"`
}

// Tables is the file representation of the reference tables
type Tables struct {
	Airports []Airport `yaml:"airports" validate:"required,min=2,dive"`
	Airlines []Airline `yaml:"airlines" validate:"required,min=1,dive"`
}
