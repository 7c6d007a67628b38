// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"triptrack/internal/countdown"
	"triptrack/internal/model"
)

// currency is the symbol prefixed to money values. Set once at startup
// from config.
var currency = "₹"

// SetCurrency overrides the currency symbol.
func SetCurrency(symbol string) {
	if symbol != "" {
		currency = symbol
	}
}

// FormatMoney renders an amount with the currency symbol and comma
// grouping. Whole amounts drop the decimals: ₹1,500 not ₹1,500.00.
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to cents once so a fraction near a whole unit carries
	// instead of printing three cent digits.
	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	s := groupDigits(strconv.FormatInt(whole, 10))
	if frac > 0 {
		s += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		return "-" + currency + s
	}
	return currency + s
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders a calendar-date string as "2 Jan 2006". Strings
// that don't parse pass through unchanged.
func FormatDate(dateStr string) string {
	d, err := time.ParseInLocation(model.DateLayout, dateStr, time.Local)
	if err != nil {
		return dateStr
	}
	return d.Format("2 Jan 2006")
}

// FormatDateTime renders an expense timestamp as "2 Jan 2006 15:04".
func FormatDateTime(e model.Expense) string {
	t, err := e.Time()
	if err != nil {
		return e.Date
	}
	return t.Format("2 Jan 2006 15:04")
}

// FormatCountdown renders a countdown as zero-padded units, e.g.
// "02d 03h 00m 15s".
func FormatCountdown(c countdown.Countdown) string {
	return fmt.Sprintf("%02dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// StatusLabel renders a lifecycle status with an initial capital.
func StatusLabel(s countdown.Status) string {
	str := string(s)
	if str == "" {
		return str
	}
	return strings.ToUpper(str[:1]) + str[1:]
}
