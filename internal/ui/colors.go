package ui

// The Color* helpers return the escape sequence of the active theme for
// their category, or "" when colours are disabled.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline starts underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorRed is used for errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen is used for successful results.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow is used for warnings.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue is the primary accent.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta is used for informational values.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan is used for secondary values such as file names.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorGrey is used for de-emphasised text.
func ColorGrey() string { return GetCurrentTheme().Secondary }
