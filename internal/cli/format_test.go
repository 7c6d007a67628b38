package cli

import (
	"testing"

	"triptrack/internal/countdown"
	"triptrack/internal/model"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{5, "₹5"},
		{1500, "₹1,500"},
		{1234567, "₹1,234,567"},
		{249.5, "₹249.50"},
		{1000.25, "₹1,000.25"},
		{-300, "-₹300"},
		// Fractions that round up to a whole unit must carry into
		// the whole part, not print three cent digits.
		{2.999, "₹3"},
		{1.995, "₹2"},
		{1000.995, "₹1,001"},
		{0.999, "₹1"},
		{333.335, "₹333.34"},
		{-2.999, "-₹3"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSetCurrency(t *testing.T) {
	SetCurrency("$")
	defer SetCurrency("₹")

	if got := FormatMoney(10); got != "$10" {
		t.Errorf("FormatMoney = %q, want $10 after SetCurrency", got)
	}

	// Blank symbol is ignored.
	SetCurrency("")
	if got := FormatMoney(10); got != "$10" {
		t.Errorf("FormatMoney = %q, want symbol unchanged by blank", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-03-12"); got != "12 Mar 2026" {
		t.Errorf("FormatDate = %q, want 12 Mar 2026", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("FormatDate passthrough = %q, want garbage", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	e := model.Expense{Date: "2026-03-12T13:05"}
	if got := FormatDateTime(e); got != "12 Mar 2026 13:05" {
		t.Errorf("FormatDateTime = %q, want 12 Mar 2026 13:05", got)
	}

	// Date-only expenses render at midnight.
	e = model.Expense{Date: "2026-03-12"}
	if got := FormatDateTime(e); got != "12 Mar 2026 00:00" {
		t.Errorf("FormatDateTime date-only = %q, want 12 Mar 2026 00:00", got)
	}
}

func TestFormatCountdown(t *testing.T) {
	c := countdown.Countdown{Days: 2, Hours: 3, Minutes: 0, Seconds: 15}
	if got := FormatCountdown(c); got != "02d 03h 00m 15s" {
		t.Errorf("FormatCountdown = %q, want 02d 03h 00m 15s", got)
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(countdown.StatusOngoing); got != "Ongoing" {
		t.Errorf("StatusLabel = %q, want Ongoing", got)
	}
	if got := StatusLabel(countdown.Status("")); got != "" {
		t.Errorf("StatusLabel(\"\") = %q, want empty", got)
	}
}
