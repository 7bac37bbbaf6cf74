//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/numlab/internal/ui"
)

const (
	// Fibonacci terms with at least TruncationLimit digits are shortened to
	// DisplayEdges leading and trailing digits unless --verbose is set.
	TruncationLimit = 100
	DisplayEdges    = 25
	// SpinnerThreshold is the term count from which the fib command shows a
	// spinner while generating.
	SpinnerThreshold = 5000
	// SpinnerUpdateEvery is the number of terms between two suffix updates.
	SpinnerUpdateEvery = 500
	// ProgressRefreshRate is the spinner frame interval.
	ProgressRefreshRate = 200 * time.Millisecond
)

// Spinner is the part of briandowns/spinner used by the fib command.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix replaces the text shown after the animation.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// CLIColorProvider implements apperrors.ColorProvider with the active theme.
type CLIColorProvider struct{}

// Red returns the error colour.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning colour.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset clears formatting.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
