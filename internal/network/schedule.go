package network

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time with minute resolution
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Clock returns a TimeOfDay, panicking on out-of-range values
func Clock(hour, minute int) TimeOfDay {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		panic(fmt.Sprintf("network: invalid clock time %d:%d", hour, minute))
	}
	return TimeOfDay{Hour: hour, Minute: minute}
}

// ParseTimeOfDay parses HH:MM or HH:MM:SS. Seconds must be zero.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}

	fields := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || len(p) != 2 {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
		}
		fields[i] = v
	}

	h, m, sec := fields[0], fields[1], fields[2]
	if h < 0 || h > 23 || m < 0 || m > 59 || sec != 0 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// String formats the time as HH:MM:SS
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Minutes returns minutes since midnight
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// Before reports whether t is strictly earlier in the day than u
func (t TimeOfDay) Before(u TimeOfDay) bool { return t.Minutes() < u.Minutes() }

// Add returns t plus d minutes, wrapping at midnight
func (t TimeOfDay) Add(d int) TimeOfDay {
	hour := (t.Hour + d/60) % 24
	minute := t.Minute + d%60
	if minute >= 60 {
		hour = (hour + 1) % 24
		minute -= 60
	}
	return TimeOfDay{Hour: hour, Minute: minute}
}

// DefaultSlots are the half-hour departure slots from 06:00 to 22:00
var DefaultSlots = []TimeOfDay{
	{6, 0}, {6, 30}, {7, 0}, {7, 30}, {8, 0}, {8, 30},
	{9, 0}, {9, 30}, {10, 0}, {10, 30}, {11, 0}, {11, 30},
	{12, 0}, {12, 30}, {13, 0}, {13, 30}, {14, 0}, {14, 30},
	{15, 0}, {15, 30}, {16, 0}, {16, 30}, {17, 0}, {17, 30},
	{18, 0}, {18, 30}, {19, 0}, {19, 30}, {20, 0}, {20, 30},
	{21, 0}, {21, 30}, {22, 0},
}

// Scheduler assigns departure slots and derives arrival times
type Scheduler struct {
	slots []TimeOfDay
}

// NewScheduler creates a scheduler over the given slots
func NewScheduler(slots []TimeOfDay) *Scheduler {
	if len(slots) == 0 {
		panic("network: scheduler needs at least one slot")
	}
	s := make([]TimeOfDay, len(slots))
	copy(s, slots)
	return &Scheduler{slots: s}
}

// Slots returns the scheduler's departure slots
func (s *Scheduler) Slots() []TimeOfDay {
	out := make([]TimeOfDay, len(s.slots))
	copy(out, s.slots)
	return out
}

// Departure draws a departure slot
func (s *Scheduler) Departure(r Rand) TimeOfDay {
	return s.slots[r.IntN(len(s.slots))]
}

// DepartureBetween draws a slot within [from, to]. It panics when the
// window holds no slot; windows are checked when a plan is validated.
func (s *Scheduler) DepartureBetween(r Rand, from, to TimeOfDay) TimeOfDay {
	window := s.window(from, to)
	if len(window) == 0 {
		panic(fmt.Sprintf("network: no departure slot between %s and %s", from, to))
	}
	return window[r.IntN(len(window))]
}

// HasSlotBetween reports whether any slot falls within [from, to]
func (s *Scheduler) HasSlotBetween(from, to TimeOfDay) bool {
	return len(s.window(from, to)) > 0
}

func (s *Scheduler) window(from, to TimeOfDay) []TimeOfDay {
	var out []TimeOfDay
	for _, slot := range s.slots {
		if !slot.Before(from) && !to.Before(slot) {
			out = append(out, slot)
		}
	}
	return out
}

// Arrival returns dep plus duration minutes on a 24-hour clock
func (s *Scheduler) Arrival(dep TimeOfDay, duration int) TimeOfDay {
	return dep.Add(duration)
}
