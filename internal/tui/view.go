package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"triptrack/internal/calculator"
	"triptrack/internal/cli"
	"triptrack/internal/countdown"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols), triptrack needs at least %d.\n",
			a.width, minTerminalWidth)
	}
	if a.showHelp {
		return a.viewHelp()
	}

	trip, ok := a.snap.Active()
	if !ok {
		empty := cardStyle.Render(
			titleStyle.Render("No active trip") + "\n\n" +
				dimStyle.Render("Create one with `triptrack trip add`,\nthen come back."))
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, empty)
	}

	expenses := a.snap.TripExpenses(trip.ID)
	var b strings.Builder

	// Header
	b.WriteString(accentStyle.Render("◈ " + trip.Name))
	b.WriteString(dimStyle.Render("  " + trip.Destination))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s – %s",
		cli.FormatDate(trip.StartDate), cli.FormatDate(trip.EndDate))))
	b.WriteString("\n\n")

	// Countdown card
	cd := countdown.Compute(a.now, trip)
	var cdBody strings.Builder
	cdBody.WriteString(labelStyle.Render(cd.Label))
	cdBody.WriteString("\n")
	if cd.Passed {
		cdBody.WriteString(posStyle.Render("Hope it was a good one."))
	} else {
		cdBody.WriteString(bigTimeStyle.Render(fmt.Sprintf("%02dd %02dh %02dm %02ds",
			cd.Days, cd.Hours, cd.Minutes, cd.Seconds)))
	}
	b.WriteString(cardStyle.Render(cdBody.String()))
	b.WriteString("\n\n")

	// Budget card
	status := calculator.Budget(trip, expenses)
	var budBody strings.Builder
	budBody.WriteString(labelStyle.Render("Budget "))
	budBody.WriteString(valueStyle.Render(cli.FormatMoney(status.Budget)))
	budBody.WriteString(labelStyle.Render("  Spent "))
	budBody.WriteString(valueStyle.Render(cli.FormatMoney(status.Spent)))
	budBody.WriteString(labelStyle.Render("  Remaining "))
	if status.Remaining < 0 {
		budBody.WriteString(negStyle.Render(cli.FormatMoney(status.Remaining)))
	} else {
		budBody.WriteString(posStyle.Render(cli.FormatMoney(status.Remaining)))
	}
	budBody.WriteString("\n")
	budBody.WriteString(progressBar(status.ProgressPercent, 36))
	budBody.WriteString(dimStyle.Render("  " + cli.FormatPercent(status.ProgressPercent)))
	b.WriteString(cardStyle.Render(budBody.String()))
	b.WriteString("\n\n")

	// Balances
	if balances := calculator.Balances(trip, expenses); len(balances) > 0 {
		var balBody strings.Builder
		balBody.WriteString(titleStyle.Render("Balances"))
		balBody.WriteString("\n")
		for _, bal := range balances {
			amount := cli.FormatMoney(bal.Balance)
			switch {
			case bal.Balance > 0:
				amount = posStyle.Render("+" + amount)
			case bal.Balance < 0:
				amount = negStyle.Render(amount)
			default:
				amount = dimStyle.Render(amount)
			}
			balBody.WriteString(fmt.Sprintf("%-14s %s\n", bal.Name, amount))
		}
		if plan := calculator.SettlementPlan(balances); len(plan) > 0 {
			balBody.WriteString("\n")
			for _, s := range plan {
				balBody.WriteString(dimStyle.Render(
					fmt.Sprintf("%s → %s  ", s.From, s.To)))
				balBody.WriteString(valueStyle.Render(cli.FormatMoney(s.Amount)))
				balBody.WriteString("\n")
			}
		}
		b.WriteString(cardStyle.Render(strings.TrimRight(balBody.String(), "\n")))
		b.WriteString("\n\n")
	}

	// Weather line
	b.WriteString(a.viewWeather(trip.Destination))
	b.WriteString("\n")

	// Status bar
	b.WriteString("\n")
	b.WriteString(a.viewStatusBar())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().MaxWidth(a.width-2).Render(b.String()))
}

func (a App) viewWeather(destination string) string {
	switch {
	case a.weatherFetching:
		return dimStyle.Render(a.spinner.View() + " fetching weather for " + destination)
	case a.weatherLoaded:
		return labelStyle.Render("Weather  ") +
			valueStyle.Render(fmt.Sprintf("%.0f°C, %s", a.conditions.TempC, a.conditions.Description))
	case a.weatherErr != nil:
		return dimStyle.Render("Weather  -- (unavailable)")
	default:
		return dimStyle.Render("Weather  -- (no API key)")
	}
}

func (a App) viewStatusBar() string {
	var parts []string
	switch {
	case a.pulling:
		parts = append(parts, a.spinner.View()+" syncing")
	case a.pullErr != nil:
		parts = append(parts, warnStyle.Render("sync failed"))
	case a.engine.Configured():
		parts = append(parts, "synced")
	default:
		parts = append(parts, "local only")
	}
	parts = append(parts, "s sync · w weather · ? help · q quit")
	return dimStyle.Render(strings.Join(parts, "  │  "))
}

func (a App) viewHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range []struct{ key, desc string }{
		{"s", "Pull and merge sheet data"},
		{"w", "Refresh destination weather"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			accentStyle.Render(fmt.Sprintf("%-3s", bind.key)),
			labelStyle.Render(bind.desc)))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

// progressBar renders a filled bar for a 0-100 percentage, colored by
// how much of the budget is gone.
func progressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	color := green
	switch {
	case pct >= 90:
		color = red
	case pct >= 70:
		color = orange
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := dimStyle.Render(strings.Repeat("░", width-filled))
	return bar + rest
}
