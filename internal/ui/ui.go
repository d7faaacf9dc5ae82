// Package ui holds the terminal styles used for user-facing output.
// Styles degrade to plain text when the output is not a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBlue   = lipgloss.Color("4")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorRed    = lipgloss.Color("1")
	colorGray   = lipgloss.Color("8")
)

// Styles are the pre-configured text styles.
var Styles = struct {
	Bold     lipgloss.Style
	Dim      lipgloss.Style
	Manifest lipgloss.Style // package.json
	File     lipgloss.Style // generated and conflicting config files
	Command  lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}{
	Bold:     lipgloss.NewStyle().Bold(true),
	Dim:      lipgloss.NewStyle().Foreground(colorGray),
	Manifest: lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
	File:     lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
	Command:  lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	Success:  lipgloss.NewStyle().Foreground(colorGreen),
	Warning:  lipgloss.NewStyle().Foreground(colorYellow),
	Error:    lipgloss.NewStyle().Foreground(colorRed),
}

const (
	IconSuccess = "✔"
	IconWarning = "⚠"
	IconError   = "✖"
)

// Manifest styles the package.json file name.
func Manifest(name string) string { return Styles.Manifest.Render(name) }

// File styles a configuration file name.
func File(name string) string { return Styles.File.Render(name) }

// Command styles a shell command or literal user input.
func Command(s string) string { return Styles.Command.Render(s) }

// Dim styles secondary text.
func Dim(s string) string { return Styles.Dim.Render(s) }

// Successf prints a line prefixed with a green check.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Styles.Success.Render(IconSuccess), fmt.Sprintf(format, args...))
}

// Warnf prints a line prefixed with a yellow warning sign.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Styles.Warning.Render(IconWarning), fmt.Sprintf(format, args...))
}

// Cancelled prints the message shown when the user aborts.
func Cancelled(w io.Writer) {
	fmt.Fprintf(w, "%s Operation cancelled\n", Styles.Error.Render(IconError))
}
