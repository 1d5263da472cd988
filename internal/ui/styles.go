package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — success, GET
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — warning, POST
	ColorError     = lipgloss.Color("#FF4444") // red    — error
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan   — calldata, paths
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — values
	ColorMeta      = lipgloss.Color("#555555") // dim gray  — help text
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue — UI chrome
	ColorBrand     = lipgloss.Color("#9B5DE5") // purple    — titles
	ColorHighlight = lipgloss.Color("#F15BB5") // pink      — selected rows
	ColorInfo      = lipgloss.Color("#4CC9F0") // light blue
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleBrand   = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true).
			MarginBottom(1)
)

// Banner returns the w3play header shown above the playground.
func Banner(version string) string {
	title := StyleBrand.Render("  w3play · calldata playground")
	tagline := StyleMeta.Render("  v" + version + "  ✦ demo & live modes  ✦ web ui proxy")
	return title + "\n" + tagline + "\n"
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Info formats an informational message.
func Info(msg string) string { return StyleInfo.Render("ℹ " + msg) }

// Hint formats a suggestion for the next command to run.
func Hint(msg string) string { return StyleMeta.Render("💡 " + msg) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Path formats an API path or URL.
func Path(p string) string { return StyleAddress.Render(p) }

// Method colors an HTTP method: GET green, everything else yellow.
func Method(m string) string {
	if m == "GET" {
		return StyleSuccess.Render(m)
	}
	return StyleWarning.Render(m)
}
