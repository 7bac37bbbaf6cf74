// Package ui holds the colour themes of numlab's terminal output: ANSI
// escape accessors for plain fmt output and lipgloss styles for the
// comparison table. Themes are derived from a small 256-colour palette.
package ui
