// Package ui renders status output to stderr. Demo messages and numeric
// results go to stdout unstyled; everything here is side-channel.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981") // emerald
	colorError   = lipgloss.Color("#EF4444") // red
	colorInfo    = lipgloss.Color("#3B82F6") // blue
	colorMuted   = lipgloss.Color("#6B7280") // gray-500
	colorSubtle  = lipgloss.Color("#9CA3AF") // gray-400
	colorText    = lipgloss.Color("#F9FAFB") // gray-50
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorMuted)
	styleLabel   = lipgloss.NewStyle().Foreground(colorSubtle).Width(12)
	styleValue   = lipgloss.NewStyle().Foreground(colorText)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "●"
	iconBullet  = "•"
)

// Success prints a success message.
func Success(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleSuccess.Render(iconSuccess), fmt.Sprintf(msg, args...))
}

// Error prints an error message.
func Error(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleError.Render(iconError), fmt.Sprintf(msg, args...))
}

// Info prints an info message.
func Info(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleInfo.Render(iconInfo), fmt.Sprintf(msg, args...))
}

// Step prints a step message with indentation.
func Step(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", styleDim.Render(iconBullet), fmt.Sprintf(msg, args...))
}

// Label prints a key-value pair with consistent formatting.
func Label(key, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		styleLabel.Render(key),
		styleValue.Render(value))
}

// Dim prints dimmed text.
func Dim(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s\n", styleDim.Render(fmt.Sprintf(msg, args...)))
}
