package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ThemeEnv names the environment variable selecting the colour theme
// ("dark" or "light").
const ThemeEnv = "NUMLAB_THEME"

// Palette holds the 256-colour indexes a theme is built from.
type Palette struct {
	Accent, Dim, Good, Warn, Bad, Note uint8
}

// Theme is a resolved colour scheme. The string fields hold ANSI escape
// sequences and are empty when colours are disabled.
type Theme struct {
	Name string
	// Plain is set for the colourless theme, whose Palette is unused.
	Plain   bool
	Palette Palette

	Primary   string // values and inputs
	Secondary string // layouts and secondary details
	Success   string
	Warning   string
	Error     string
	Info      string // labels, timings
	Bold      string
	Underline string
	Reset     string
}

func fg(code uint8) string { return fmt.Sprintf("\033[38;5;%dm", code) }

// NewTheme derives the escape sequences of a theme from its palette.
func NewTheme(name string, p Palette) Theme {
	return Theme{
		Name:      name,
		Palette:   p,
		Primary:   fg(p.Accent),
		Secondary: fg(p.Dim),
		Success:   fg(p.Good),
		Warning:   fg(p.Warn),
		Error:     fg(p.Bad),
		Info:      fg(p.Note),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = NewTheme("dark", Palette{Accent: 39, Dim: 245, Good: 82, Warn: 220, Bad: 196, Note: 141})

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = NewTheme("light", Palette{Accent: 27, Dim: 240, Good: 28, Warn: 130, Bad: 124, Note: 54})

	// NoColorTheme disables every escape sequence. It is selected by
	// --no-color or the NO_COLOR environment variable.
	NoColorTheme = Theme{Name: "none", Plain: true}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TableStyles holds the lipgloss styles used to render result tables.
type TableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Border lipgloss.Style
}

func color(code uint8) lipgloss.Color { return lipgloss.Color(fmt.Sprint(code)) }

func newTableStyles(t Theme) TableStyles {
	if t.Plain {
		plain := lipgloss.NewStyle()
		return TableStyles{Header: plain, Cell: plain, Good: plain, Bad: plain, Border: plain}
	}
	p := t.Palette
	return TableStyles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(color(p.Accent)),
		Cell:   lipgloss.NewStyle(),
		Good:   lipgloss.NewStyle().Foreground(color(p.Good)),
		Bad:    lipgloss.NewStyle().Foreground(color(p.Bad)).Bold(true),
		Border: lipgloss.NewStyle().Foreground(color(p.Dim)),
	}
}

// GetTableStyles returns the table styles matching the active theme.
func GetTableStyles() TableStyles {
	return newTableStyles(GetCurrentTheme())
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

func themeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	}
	return DarkTheme
}

// SetTheme activates the theme called name ("dark", "light" or "none").
// Unknown names select the dark theme.
func SetTheme(name string) {
	SetCurrentTheme(themeByName(name))
}

// InitTheme selects the theme for a run. Colours are disabled when noColor
// is set or NO_COLOR is present in the environment (https://no-color.org/);
// otherwise NUMLAB_THEME picks between dark and light.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(themeByName(os.Getenv(ThemeEnv)))
}
