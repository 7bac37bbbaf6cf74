package cli

import (
	"testing"

	"github.com/agbru/numlab/internal/ui"
)

// withNoColor switches to the colourless theme for the duration of a test
// so output can be compared verbatim. Tests using it must not run in
// parallel.
func withNoColor(t *testing.T) {
	t.Helper()
	original := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}
