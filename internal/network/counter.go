package network

import "fmt"

const (
	// DemoCounterStart is the first sequence number of the demo phase
	DemoCounterStart = 1000
	// BulkCounterStart is the first sequence number of the bulk sweep
	BulkCounterStart = 2000
)

// Counter hands out flight sequence numbers. It only moves forward, so a
// number is never issued twice. Not safe for concurrent use.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first number is start
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

// Next returns the current number and advances the counter
func (c *Counter) Next() int {
	n := c.next
	c.next++
	return n
}

// Peek returns the number the next call to Next will return
func (c *Counter) Peek() int { return c.next }

// AdvanceTo moves the counter up to n. It never moves backwards.
func (c *Counter) AdvanceTo(n int) {
	if n > c.next {
		c.next = n
	}
}

// FlightNumber formats an airline code and sequence number, e.g. 6E1004
func FlightNumber(airline string, seq int) string {
	return fmt.Sprintf("%s%04d", airline, seq)
}
