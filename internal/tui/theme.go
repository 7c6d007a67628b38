package tui

import "github.com/charmbracelet/lipgloss"

// Accent palette keyed by the persisted accent color name.
var accentColors = map[string]lipgloss.Color{
	"purple": lipgloss.Color("#8B5CF6"),
	"blue":   lipgloss.Color("#3B82F6"),
	"green":  lipgloss.Color("#22C55E"),
	"orange": lipgloss.Color("#F97316"),
	"pink":   lipgloss.Color("#EC4899"),
}

var (
	accent  = accentColors["purple"]
	text    = lipgloss.Color("#1F2328")
	textDim = lipgloss.Color("#6E7781")
	border  = lipgloss.Color("#D0D7DE")
	green   = lipgloss.Color("#1A7F37")
	orange  = lipgloss.Color("#BC4C00")
	red     = lipgloss.Color("#CF222E")
)

// SetTheme switches the palette to the persisted theme and accent.
func SetTheme(theme, accentName string) {
	if c, ok := accentColors[accentName]; ok {
		accent = c
	}
	if theme == "dark" {
		text = lipgloss.Color("#E6EDF3")
		textDim = lipgloss.Color("#8B949E")
		border = lipgloss.Color("#30363D")
		green = lipgloss.Color("#3FB950")
		orange = lipgloss.Color("#D29922")
		red = lipgloss.Color("#F85149")
	}
	rebuildStyles()
}

var (
	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	valueStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	accentStyle  lipgloss.Style
	posStyle     lipgloss.Style
	negStyle     lipgloss.Style
	warnStyle    lipgloss.Style
	cardStyle    lipgloss.Style
	bigTimeStyle lipgloss.Style
)

func rebuildStyles() {
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(text)
	labelStyle = lipgloss.NewStyle().Foreground(textDim)
	valueStyle = lipgloss.NewStyle().Foreground(text)
	dimStyle = lipgloss.NewStyle().Foreground(textDim)
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	posStyle = lipgloss.NewStyle().Foreground(green)
	negStyle = lipgloss.NewStyle().Foreground(red)
	warnStyle = lipgloss.NewStyle().Foreground(orange)
	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2)
	bigTimeStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
}

func init() {
	rebuildStyles()
}
