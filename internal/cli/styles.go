package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"weeklybudget/internal/core"
)

var (
	SuccessColor = lipgloss.Color("#4ECDC4")
	WarningColor = lipgloss.Color("#FFE66D")
	ErrorColor   = lipgloss.Color("#FF6B6B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// FormatTitle renders a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}

// FormatSuccess renders a success message with a check mark prefix.
func FormatSuccess(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// FormatError renders an error message with a cross prefix.
func FormatError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// FormatMoney renders an amount with two decimals.
func FormatMoney(m core.Money) string {
	if m.Cents < 0 {
		return "-$" + core.Money{Cents: -m.Cents}.String()
	}
	return "$" + m.String()
}

// FormatSignedMoney colors an amount red when it is negative.
func FormatSignedMoney(m core.Money) string {
	if m.Cents < 0 {
		return ErrorStyle.Render(FormatMoney(m))
	}
	return FormatMoney(m)
}

// FormatUsage colors a percentage of the weekly limit by how close it is to
// the limit.
func FormatUsage(pct float64) string {
	s := fmt.Sprintf("%.0f%%", pct)
	switch {
	case pct >= 100:
		return ErrorStyle.Render(s)
	case pct >= 80:
		return WarningStyle.Render(s)
	default:
		return SuccessStyle.Render(s)
	}
}
