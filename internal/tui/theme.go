package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type theme struct {
	title    lipgloss.Style
	header   lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	dim      lipgloss.Style
	toast    lipgloss.Style
	banner   lipgloss.Style
	barFill  lipgloss.Style
	barEmpty lipgloss.Style
}

func newTheme() theme {
	accent := lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	okCol := lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	dimCol := lipgloss.AdaptiveColor{Light: "245", Dark: "240"}

	bannerFg := lipgloss.Color("220")
	if !termenv.HasDarkBackground() {
		bannerFg = lipgloss.Color("130")
	}

	return theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		header:   lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().Reverse(true),
		done:     lipgloss.NewStyle().Foreground(okCol).Strikethrough(true),
		dim:      lipgloss.NewStyle().Foreground(dimCol),
		toast:    lipgloss.NewStyle().Italic(true).Foreground(accent),
		banner:   lipgloss.NewStyle().Bold(true).Foreground(bannerFg),
		barFill:  lipgloss.NewStyle().Foreground(okCol),
		barEmpty: lipgloss.NewStyle().Foreground(dimCol),
	}
}
