package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the highlight codes for HandleError; cli
// implements it from the active theme.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// ExitCodeFor maps an error to the process exit code without printing.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	var synErr SyntaxError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, ErrInvalidOperand):
		return ExitErrorInvalidOperand
	case errors.As(err, &synErr):
		return ExitErrorSyntax
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}

// HandleError prints a one-line status for a failed evaluation and returns
// the matching exit code. colors may be nil.
func HandleError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
	case ExitErrorInvalidOperand:
		fmt.Fprintf(out, "Status: Failure (Invalid operand). %v\n", err)
	default:
		fmt.Fprintf(out, "Status: Failure. %v\n", err)
	}
	return code
}
