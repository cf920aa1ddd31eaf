package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	// Uses darker colors for better readability.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all formatting. It is the default: the
	// documented demonstration output carries no escape codes.
	NoColorTheme = Theme{Name: "none"}
)

var (
	themeMu     sync.RWMutex
	activeTheme = NoColorTheme
)

// InitTheme selects the active theme by name. "auto" detects the terminal
// background via lipgloss and honors NO_COLOR; unknown names fall back to
// no color.
func InitTheme(name string) {
	themeMu.Lock()
	defer themeMu.Unlock()

	switch name {
	case "dark":
		activeTheme = DarkTheme
	case "light":
		activeTheme = LightTheme
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			activeTheme = NoColorTheme
		} else if lipgloss.HasDarkBackground() {
			activeTheme = DarkTheme
		} else {
			activeTheme = LightTheme
		}
	default:
		activeTheme = NoColorTheme
	}
}

// ActiveTheme returns a copy of the currently active theme.
func ActiveTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return activeTheme
}

// Color accessors return the active theme's escape codes. They exist so
// call sites read as ui.ColorGreen() rather than threading a Theme value
// through every Display function.

// ColorGreen returns the success color code.
func ColorGreen() string { return ActiveTheme().Success }

// ColorRed returns the error color code.
func ColorRed() string { return ActiveTheme().Error }

// ColorYellow returns the warning color code.
func ColorYellow() string { return ActiveTheme().Warning }

// ColorBlue returns the primary accent color code.
func ColorBlue() string { return ActiveTheme().Primary }

// ColorCyan returns the info color code.
func ColorCyan() string { return ActiveTheme().Info }

// ColorMagenta returns the secondary accent color code.
func ColorMagenta() string { return ActiveTheme().Secondary }

// ColorBold returns the bold code.
func ColorBold() string { return ActiveTheme().Bold }

// ColorUnderline returns the underline code.
func ColorUnderline() string { return ActiveTheme().Underline }

// ColorReset returns the reset code.
func ColorReset() string { return ActiveTheme().Reset }
