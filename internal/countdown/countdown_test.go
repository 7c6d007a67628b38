package countdown

import (
	"testing"
	"time"

	"triptrack/internal/model"
)

func trip(start, end string) model.Trip {
	return model.Trip{ID: "t1", Name: "Test", StartDate: start, EndDate: end}
}

func TestStatusAt_Phases(t *testing.T) {
	tr := trip("2026-03-12", "2026-03-15")

	cases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"before start", time.Date(2026, 3, 11, 23, 59, 59, 0, time.Local), StatusUpcoming},
		{"start midnight", time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local), StatusOngoing},
		{"mid trip", time.Date(2026, 3, 13, 12, 0, 0, 0, time.Local), StatusOngoing},
		{"last second of end day", time.Date(2026, 3, 15, 23, 59, 59, 0, time.Local), StatusOngoing},
		{"after end day", time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local), StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusAt(tc.now, tr); got != tc.want {
				t.Errorf("StatusAt(%v) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}

func TestStatusAt_BadDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	if got := StatusAt(now, trip("not-a-date", "2026-03-15")); got != StatusCompleted {
		t.Errorf("StatusAt with bad start = %q, want completed", got)
	}
	if got := StatusAt(now, trip("2026-03-12", "")); got != StatusCompleted {
		t.Errorf("StatusAt with bad end = %q, want completed", got)
	}
}

func TestCompute_Upcoming(t *testing.T) {
	tr := trip("2026-03-12", "2026-03-15")
	now := time.Date(2026, 3, 9, 21, 0, 0, 0, time.Local) // 2d 3h before start

	c := Compute(now, tr)
	if c.Label != "Trip Starts In" {
		t.Errorf("Label = %q, want Trip Starts In", c.Label)
	}
	if c.Days != 2 || c.Hours != 3 || c.Minutes != 0 || c.Seconds != 0 {
		t.Errorf("countdown = %dd %dh %dm %ds, want 2d 3h 0m 0s", c.Days, c.Hours, c.Minutes, c.Seconds)
	}
	if c.Passed {
		t.Error("Passed = true, want false")
	}
}

func TestCompute_OngoingCountsToEndOfDay(t *testing.T) {
	tr := trip("2026-03-12", "2026-03-15")
	now := time.Date(2026, 3, 15, 23, 59, 29, 0, time.Local)

	c := Compute(now, tr)
	if c.Label != "Trip Ends In" {
		t.Errorf("Label = %q, want Trip Ends In", c.Label)
	}
	if c.Days != 0 || c.Hours != 0 || c.Minutes != 0 || c.Seconds != 30 {
		t.Errorf("countdown = %dd %dh %dm %ds, want 0d 0h 0m 30s", c.Days, c.Hours, c.Minutes, c.Seconds)
	}
}

func TestCompute_Completed(t *testing.T) {
	tr := trip("2026-03-12", "2026-03-15")
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)

	c := Compute(now, tr)
	if c.Label != "Trip Completed" {
		t.Errorf("Label = %q, want Trip Completed", c.Label)
	}
	if c.Days != 0 || c.Hours != 0 || c.Minutes != 0 || c.Seconds != 0 {
		t.Errorf("completed countdown not zeroed: %+v", c)
	}
}

func TestCompute_StartInstantRollsToOngoing(t *testing.T) {
	tr := trip("2026-03-12", "2026-03-15")
	start, err := tr.Start()
	if err != nil {
		t.Fatal(err)
	}

	c := Compute(start, tr)
	if c.Status != StatusOngoing {
		t.Fatalf("Status = %q, want ongoing at start instant", c.Status)
	}
	if c.Passed {
		t.Error("Passed = true at start instant, want false (end is still ahead)")
	}
}

func TestCompute_DecompositionLadder(t *testing.T) {
	tr := trip("2026-03-12", "2026-03-15")
	now := time.Date(2026, 3, 10, 22, 58, 57, 0, time.Local) // 1d 1h 1m 3s before start

	c := Compute(now, tr)
	if c.Days != 1 || c.Hours != 1 || c.Minutes != 1 || c.Seconds != 3 {
		t.Errorf("countdown = %dd %dh %dm %ds, want 1d 1h 1m 3s", c.Days, c.Hours, c.Minutes, c.Seconds)
	}
}
