package network

// StatusScheduled is the status of every generated flight
const StatusScheduled = "SCHEDULED"

// Class records which generation phase produced an edge
type Class string

const (
	ClassDirect  Class = "direct"
	ClassOneStop Class = "one-stop"
	ClassTwoStop Class = "two-stop"
	ClassBulk    Class = "bulk"
)

// Capacities are the aircraft sizes a flight can be assigned
var Capacities = []int{120, 150, 180}

const (
	minBooked    = 20
	minAvailable = 10
)

// FlightEdge is one generated flight between two airports
type FlightEdge struct {
	FlightNumber   string    `csv:"flight_number"`
	Source         string    `csv:"source"`
	Destination    string    `csv:"destination"`
	Cost           float64   `csv:"cost"`
	Duration       int       `csv:"duration"`
	AvailableSeats int       `csv:"available_seats"`
	BookedSeats    int       `csv:"booked_seats"`
	Status         string    `csv:"flight_status"`
	DepartureTime  TimeOfDay `csv:"departure_time"`
	ArrivalTime    TimeOfDay `csv:"arrival_time"`

	Airline string `csv:"-"`
	Class   Class  `csv:"-"`
}

// Capacity returns the total seats on the flight
func (e FlightEdge) Capacity() int { return e.AvailableSeats + e.BookedSeats }

// drawSeats picks a capacity and a booked count that leaves at least
// minAvailable seats open
func drawSeats(r Rand) (available, booked int) {
	capacity := Capacities[r.IntN(len(Capacities))]
	booked = intBetween(r, minBooked, capacity-minAvailable)
	return capacity - booked, booked
}
