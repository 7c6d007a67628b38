// Package countdown computes trip lifecycle status and the ticking
// time-remaining display. Everything is a pure function of (now, trip)
// so a one-second tick can recompute without accumulating error.
package countdown

import (
	"time"

	"triptrack/internal/model"
)

// Status is a trip's lifecycle phase.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Millisecond divisors for the countdown decomposition ladder.
const (
	msPerDay    = 86400000
	msPerHour   = 3600000
	msPerMinute = 60000
	msPerSecond = 1000
)

// Countdown is one tick's display state.
type Countdown struct {
	Label   string
	Status  Status
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Passed  bool // target reached but status not yet rolled over
}

// StatusAt returns the trip's lifecycle phase at the given instant.
// The end date is inclusive through 23:59:59 local. Trips with
// unparseable dates report completed, which renders as a zeroed badge
// rather than an error.
func StatusAt(now time.Time, trip model.Trip) Status {
	start, err := trip.Start()
	if err != nil {
		return StatusCompleted
	}
	end, err := trip.End()
	if err != nil {
		return StatusCompleted
	}

	switch {
	case now.Before(start):
		return StatusUpcoming
	case !now.After(end):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}

// Compute returns the countdown display for a trip at the given instant.
// Upcoming trips count down to the start date, ongoing trips to the end
// of the last day, completed trips are zeroed with a terminal label.
func Compute(now time.Time, trip model.Trip) Countdown {
	status := StatusAt(now, trip)

	var target time.Time
	var label string
	switch status {
	case StatusUpcoming:
		target, _ = trip.Start()
		label = "Trip Starts In"
	case StatusOngoing:
		target, _ = trip.End()
		label = "Trip Ends In"
	default:
		return Countdown{Label: "Trip Completed", Status: StatusCompleted}
	}

	c := Countdown{Label: label, Status: status}

	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		c.Passed = true
		return c
	}

	c.Days = int(diff / msPerDay)
	diff %= msPerDay
	c.Hours = int(diff / msPerHour)
	diff %= msPerHour
	c.Minutes = int(diff / msPerMinute)
	diff %= msPerMinute
	c.Seconds = int(diff / msPerSecond)
	return c
}
