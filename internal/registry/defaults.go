package registry

// DefaultTables returns the Indian domestic network: 6 hubs, 10 secondary
// cities and 25 regional airports, served by 5 carriers.
func DefaultTables() Tables {
	return Tables{
		Airports: []Airport{
			{Code: "DEL", City: "Delhi", Tier: TierHub},
			{Code: "BOM", City: "Mumbai", Tier: TierHub},
			{Code: "BLR", City: "Bengaluru", Tier: TierHub},
			{Code: "MAA", City: "Chennai", Tier: TierHub},
			{Code: "CCU", City: "Kolkata", Tier: TierHub},
			{Code: "HYD", City: "Hyderabad", Tier: TierHub},

			{Code: "AMD", City: "Ahmedabad", Tier: TierSecondary},
			{Code: "PNQ", City: "Pune", Tier: TierSecondary},
			{Code: "GOI", City: "Goa", Tier: TierSecondary},
			{Code: "COK", City: "Kochi", Tier: TierSecondary},
			{Code: "TRV", City: "Thiruvananthapuram", Tier: TierSecondary},
			{Code: "JAI", City: "Jaipur", Tier: TierSecondary},
			{Code: "LKO", City: "Lucknow", Tier: TierSecondary},
			{Code: "PAT", City: "Patna", Tier: TierSecondary},
			{Code: "BHU", City: "Bhubaneswar", Tier: TierSecondary},
			{Code: "GAU", City: "Guwahati", Tier: TierSecondary},

			{Code: "IXC", City: "Chandigarh", Tier: TierRegional},
			{Code: "STV", City: "Surat", Tier: TierRegional},
			{Code: "IXR", City: "Ranchi", Tier: TierRegional},
			{Code: "IXJ", City: "Jammu", Tier: TierRegional},
			{Code: "SXR", City: "Srinagar", Tier: TierRegional},
			{Code: "ATQ", City: "Amritsar", Tier: TierRegional},
			{Code: "UDR", City: "Udaipur", Tier: TierRegional},
			{Code: "JDH", City: "Jodhpur", Tier: TierRegional},
			{Code: "VNS", City: "Varanasi", Tier: TierRegional},
			{Code: "VTZ", City: "Visakhapatnam", Tier: TierRegional},
			{Code: "VGA", City: "Vijayawada", Tier: TierRegional},
			{Code: "CJB", City: "Coimbatore", Tier: TierRegional},
			{Code: "TRZ", City: "Tiruchirapalli", Tier: TierRegional},
			{Code: "MDU", City: "Madurai", Tier: TierRegional},
			{Code: "IXM", City: "Mangalore", Tier: TierRegional},
			{Code: "CNN", City: "Kannur", Tier: TierRegional},
			{Code: "CLT", City: "Calicut", Tier: TierRegional},
			{Code: "DED", City: "Dehradun", Tier: TierRegional},
			{Code: "PBD", City: "Porbandar", Tier: TierRegional},
			{Code: "BHJ", City: "Bhuj", Tier: TierRegional},
			{Code: "TEZ", City: "Tezpur", Tier: TierRegional},
			{Code: "IXS", City: "Silchar", Tier: TierRegional},
			{Code: "AJL", City: "Aizawl", Tier: TierRegional},
			{Code: "IMF", City: "Imphal", Tier: TierRegional},
			{Code: "IXA", City: "Agartala", Tier: TierRegional},
		},
		Airlines: []Airline{
			{Code: "AI", Name: "Air India", CostFactor: 1.1},
			{Code: "6E", Name: "IndiGo", CostFactor: 0.9},
			{Code: "UK", Name: "Vistara", CostFactor: 1.2},
			{Code: "SG", Name: "SpiceJet", CostFactor: 0.85},
			{Code: "G8", Name: "GoFirst", CostFactor: 0.8},
		},
	}
}

// Default returns the registry built from DefaultTables
func Default() *Registry {
	r, err := New(DefaultTables())
	if err != nil {
		panic(err)
	}
	return r
}
