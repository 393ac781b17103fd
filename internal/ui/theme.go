// Package ui provides terminal presentation helpers: theme colors,
// headless-mode detection, and progress reporting for batch runs.
package ui

import "os"

// Colors holds the hex colors a theme renders with.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme controls color rendering. NoColor disables all ANSI color output.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default theme, honoring the NO_COLOR convention.
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   "#DA7756",
			Secondary: "#C45A3C",
			Success:   "#10B981",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
	}
}
