package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Life RPG theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconHeart    = "❤️"
	IconEnergy   = "🍗"
	IconXP       = "⭐"
	IconOracle   = "🧙"
	IconQuest    = "🗺️"
	IconSparkle  = "✨"
	IconCalendar = "📅"
	IconScroll   = "📜"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconReset    = "🔄"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cHealth  = lipgloss.Color("196") // red
	cEnergy  = lipgloss.Color("214") // orange
	cXP      = lipgloss.Color("42")  // green
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cXP)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cEnergy)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cHealth)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Health = lipgloss.NewStyle().Foreground(cHealth)
	Energy = lipgloss.NewStyle().Foreground(cEnergy)
	XP     = lipgloss.NewStyle().Foreground(cXP)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

// DisableColors forces plain output regardless of terminal support.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatBar renders a segmented 0..max bar, filled cells styled, empty cells
// dimmed. Mirrors the original pixel status bar.
func StatBar(value, max int, fill lipgloss.Style) string {
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	var b strings.Builder
	for i := 0; i < max; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < value {
			b.WriteString(fill.Render("■"))
		} else {
			b.WriteString(Muted.Render("□"))
		}
	}
	return b.String()
}

// Signed formats a stat delta with an explicit sign, as quest cards show it.
func Signed(n int) string {
	return fmt.Sprintf("%+d", n)
}
