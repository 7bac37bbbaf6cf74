package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit statuses.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3 // algorithms disagreed on a result
	ExitErrorConfig   = 4
	ExitErrorInput    = 5 // a value was rejected by a validation rule
	ExitErrorCanceled = 130
)

// Sentinel error kinds shared by every library package.
var (
	// ErrNilArgument is reported when a required collection or strategy
	// is absent.
	ErrNilArgument = errors.New("argument is nil")
	// ErrInvalidArgument is reported when a supplied value violates a size
	// or content constraint.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ConfigError reports an unusable flag, command or environment value.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError attributes Cause to the algorithm or command that failed,
// for example "stein" or "fib".
type CalculationError struct {
	Operation string
	Cause     error
}

func (e CalculationError) Error() string {
	if e.Operation == "" {
		return e.Cause.Error()
	}
	return e.Operation + ": " + e.Cause.Error()
}

func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that Operation ran past the --timeout Limit.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap reports context.DeadlineExceeded so that timeouts are recognised by
// [IsContextError].
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError represents an input validation failure. It identifies which
// argument failed validation, provides a human-readable explanation and
// carries the sentinel kind of the failure.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
	// Kind is ErrNilArgument or ErrInvalidArgument. A zero Kind is treated
	// as ErrInvalidArgument.
	Kind error
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel kind of the failure.
func (e ValidationError) Unwrap() error {
	if e.Kind == nil {
		return ErrInvalidArgument
	}
	return e.Kind
}

// NilArgument builds a ValidationError of kind ErrNilArgument.
func NilArgument(field string) error {
	return ValidationError{Field: field, Message: "must not be nil", Kind: ErrNilArgument}
}

// InvalidArgument builds a ValidationError of kind ErrInvalidArgument with a
// formatted message.
func InvalidArgument(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...), Kind: ErrInvalidArgument}
}

// IsInputError reports whether err is one of the two input error kinds.
func IsInputError(err error) bool {
	return errors.Is(err, ErrNilArgument) || errors.Is(err, ErrInvalidArgument)
}

// WrapError prefixes err with a formatted message, keeping it visible to
// errors.Is and errors.As. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError reports whether err comes from a canceled or expired context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
