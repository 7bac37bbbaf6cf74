package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape sequences used to colourise error output.
// A nil provider prints plain text.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

// ExitCodeFor maps an error to the process exit code that describes it.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case IsInputError(err):
		return ExitErrorInput
	default:
		return ExitErrorGeneric
	}
}

// HandleCalculationError writes a human-readable description of err to out
// and returns the matching exit code. A nil error writes nothing.
//
// Parameters:
//   - err: The error returned by the computation.
//   - duration: How long the computation ran before failing.
//   - out: The writer receiving the message.
//   - colors: Escape sequence provider, or nil for plain output.
//
// Returns:
//   - int: The exit code derived from the error.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = plainColors{}
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		var timeout TimeoutError
		if duration == 0 && errors.As(err, &timeout) {
			duration = timeout.Limit
		}
		fmt.Fprintf(out, "%sTimeout exceeded after %s.%s\n", colors.Red(), duration, colors.Reset())
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sOperation canceled after %s.%s\n", colors.Yellow(), duration, colors.Reset())
	case ExitErrorInput:
		fmt.Fprintf(out, "%sInvalid input: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}
	return code
}
