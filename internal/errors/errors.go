package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit statuses. A batch exits with the highest-priority code among
// its failures, see orchestration.AnalyzeResults.
const (
	ExitSuccess             = 0
	ExitErrorGeneric        = 1
	ExitErrorTimeout        = 2
	ExitErrorInvalidOperand = 3 // zero divisor, denominator or reciprocal
	ExitErrorConfig         = 4
	ExitErrorSyntax         = 5
	ExitErrorCanceled       = 130 // SIGINT, 128+2
)

// ErrInvalidOperand matches every InvalidOperandError under errors.Is,
// whichever package raised it.
var ErrInvalidOperand = errors.New("invalid operand")

// InvalidOperandError is returned when zero shows up where it is not
// allowed: a divisor, a denominator, the argument of a reciprocal.
type InvalidOperandError struct {
	Op     string // "quo", "rem", "reciprocal", ...
	Reason string
}

func (e InvalidOperandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrInvalidOperand or an identical
// InvalidOperandError.
func (e InvalidOperandError) Is(target error) bool {
	if target == ErrInvalidOperand {
		return true
	}
	t, ok := target.(InvalidOperandError)
	return ok && t == e
}

// ConfigError rejects a flag, environment variable or profile value.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvalError ties a failure to the expression text that produced it.
type EvalError struct {
	Expr  string
	Cause error
}

func (e EvalError) Error() string {
	return fmt.Sprintf("evaluating %q: %v", e.Expr, e.Cause)
}

func (e EvalError) Unwrap() error { return e.Cause }

// SyntaxError points at the byte offset where parsing gave up.
type SyntaxError struct {
	Input   string
	Offset  int
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError prefixes err with a formatted message. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// IsContextError reports cancellation or an expired deadline anywhere in
// the chain.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
