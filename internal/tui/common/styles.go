package common

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#2E8B57") // Sea green, hedge green
	ColorSecondary = lipgloss.Color("#8FBC8F") // Dark sea green
	ColorAccent    = lipgloss.Color("#DAA520") // Goldenrod

	ColorError   = lipgloss.Color("#FF6347") // Tomato
	ColorWarning = lipgloss.Color("#FFD700") // Gold

	ColorSubtle     = lipgloss.Color("#666666")
	ColorMuted      = lipgloss.Color("#888888")
	ColorBorder     = lipgloss.Color("#444444")
	ColorForeground = lipgloss.Color("#FFFFFF")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginBottom(1)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	MutedTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	AccentTextStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	PrimaryTextStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	SelectedStyle = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(ColorForeground).
			Bold(true).
			Padding(0, 1)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	FocusedBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(ColorForeground).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpSepStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Logo returns the Liguster ASCII art logo
func Logo() string {
	logo := `
 _     _                 _
| |   (_) __ _ _   _ ___| |_ ___ _ __
| |   | |/ _` + "`" + ` | | | / __| __/ _ \ '__|
| |___| | (_| | |_| \__ \ ||  __/ |
|_____|_|\__, |\__,_|___/\__\___|_|
         |___/
`
	return lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Render(logo)
}

// Centered returns a style that centers content in the given dimensions
func Centered(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
}

// FormatHelp formats a help line with key and description
func FormatHelp(key, desc string) string {
	return HelpKeyStyle.Render(key) +
		HelpSepStyle.Render(" ") +
		HelpDescStyle.Render(desc)
}
