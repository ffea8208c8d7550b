package main

import "github.com/charmbracelet/lipgloss"

// Styles for command status lines: "<status> <path> (<note>)".
var (
	stylePath          = lipgloss.NewStyle().Bold(true)
	styleNote          = lipgloss.NewStyle().Faint(true).Italic(true)
	styleStatusOK      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleStatusProblem = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
