// Package tui provides the interactive Bubble Tea trip dashboard.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"triptrack/internal/config"
	"triptrack/internal/model"
	"triptrack/internal/sheets"
	"triptrack/internal/state"
	"triptrack/internal/weather"
)

// PullDoneMsg is sent when the startup sheet pull finishes.
type PullDoneMsg struct {
	Err error
}

// WeatherMsg is sent when the destination weather fetch completes.
type WeatherMsg struct {
	Conditions weather.Conditions
	Err        error
}

// App is the root Bubble Tea model.
type App struct {
	states *state.Container
	engine *sheets.Engine

	// Snapshot re-read on every tick so external edits show up live.
	snap model.AppState
	now  time.Time

	// Sheet pull state
	pulling bool
	pullErr error

	// Weather state
	weatherLoaded   bool
	weatherFetching bool
	conditions      weather.Conditions
	weatherErr      error

	// UI state
	width    int
	height   int
	showHelp bool
	spinner  spinner.Model
}

const minTerminalWidth = 60

// NewApp creates the dashboard model.
func NewApp(states *state.Container) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accent)

	engine := sheets.NewEngine(states)
	snap := states.Snapshot()

	a := App{
		states:  states,
		engine:  engine,
		snap:    snap,
		now:     time.Now(),
		spinner: sp,
		pulling: engine.Configured(),
	}
	if trip, ok := snap.Active(); ok {
		a.weatherFetching = weatherCmd(snap.Settings, trip.Destination) != nil
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(),
		a.spinner.Tick,
	}
	if a.pulling {
		cmds = append(cmds, pullCmd(a.engine))
	}
	if a.weatherFetching {
		if trip, ok := a.snap.Active(); ok {
			cmds = append(cmds, weatherCmd(a.snap.Settings, trip.Destination))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "?":
			a.showHelp = !a.showHelp
			return a, nil
		case "s":
			if !a.pulling && a.engine.Configured() {
				a.pulling = true
				return a, pullCmd(a.engine)
			}
			return a, nil
		case "w":
			if a.weatherFetching {
				return a, nil
			}
			if trip, ok := a.snap.Active(); ok {
				if cmd := weatherCmd(a.snap.Settings, trip.Destination); cmd != nil {
					a.weatherFetching = true
					return a, cmd
				}
			}
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
		}
		return a, nil

	case tickMsg:
		// One ticker drives the countdown; each tick re-reads state so
		// trip edits from another process appear without a restart.
		a.now = time.Now()
		a.snap = a.states.Snapshot()
		return a, tickCmd()

	case PullDoneMsg:
		a.pulling = false
		a.pullErr = msg.Err
		a.snap = a.states.Snapshot()
		return a, nil

	case WeatherMsg:
		a.weatherFetching = false
		a.weatherLoaded = msg.Err == nil
		a.conditions = msg.Conditions
		a.weatherErr = msg.Err
		return a, nil

	case spinner.TickMsg:
		if a.pulling || a.weatherFetching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// pullCmd merges sheet rows into local state in the background.
func pullCmd(engine *sheets.Engine) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return PullDoneMsg{Err: engine.PullMerge(ctx)}
	}
}

// weatherCmd fetches destination weather in the background. Returns nil
// when no API key is configured.
func weatherCmd(settings model.Settings, destination string) tea.Cmd {
	client := weather.NewClient(config.WeatherKey(settings))
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		cond, err := client.Current(ctx, destination)
		return WeatherMsg{Conditions: cond, Err: err}
	}
}
