package feed

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	author  lipgloss.Style
	handle  lipgloss.Style
	meta    lipgloss.Style
	reply   lipgloss.Style
	content lipgloss.Style
	label   lipgloss.Style
	detail  lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		handle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		reply:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		content: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
