package tui

import "github.com/charmbracelet/lipgloss"

// Paleta del kiosk; el tema se cambia con ctrl+t.
var (
	lightFg     = lipgloss.Color("#101F38")
	lightMuted  = lipgloss.Color("#6b7280")
	lightBorder = lipgloss.Color("#cbd2d9")
	lightAccent = lipgloss.Color("#0f766e")

	darkFg     = lipgloss.Color("#f2f2f2")
	darkMuted  = lipgloss.Color("#9aa5b1")
	darkBorder = lipgloss.Color("#2a3850")
	darkAccent = lipgloss.Color("#5eead4")

	colorSuccess = lipgloss.Color("#22c55e")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

type Theme struct {
	Name   string
	Fg     lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Accent lipgloss.Color
	IsDark bool
}

func LightTheme() Theme {
	return Theme{Name: "açık", Fg: lightFg, Muted: lightMuted, Border: lightBorder, Accent: lightAccent}
}

func DarkTheme() Theme {
	return Theme{Name: "koyu", Fg: darkFg, Muted: darkMuted, Border: darkBorder, Accent: darkAccent, IsDark: true}
}

type Styles struct {
	Theme Theme

	Title      lipgloss.Style
	Label      lipgloss.Style
	Help       lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardTitle  lipgloss.Style
	Button     lipgloss.Style
	Disabled   lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

func NewStyles(t Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		MarginBottom(1)

	return Styles{
		Theme:      t,
		Title:      lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginBottom(1),
		Label:      lipgloss.NewStyle().Foreground(t.Fg).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(t.Muted),
		Card:       card,
		CardActive: card.BorderForeground(t.Accent),
		CardTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.Fg),
		Button:     lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Disabled:   lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true),
		Success:    lipgloss.NewStyle().Foreground(colorSuccess),
		Error:      lipgloss.NewStyle().Foreground(colorError),
		Warning:    lipgloss.NewStyle().Foreground(colorWarning),
	}
}
