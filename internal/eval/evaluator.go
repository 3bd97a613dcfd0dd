package eval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/rational"
)

// Mode selects the number domain of an Evaluator.
type Mode string

const (
	// ModeInt evaluates over integers; '/' truncates toward zero.
	ModeInt Mode = "int"
	// ModeRat evaluates over exact fractions.
	ModeRat Mode = "rat"
)

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeInt, ModeRat:
		return m, nil
	}
	return "", apperrors.NewConfigError("unknown mode %q (want %q or %q)", s, ModeInt, ModeRat)
}

// Result is the outcome of one successful evaluation.
type Result struct {
	Expr     string
	Value    Value
	Digits   int
	Duration time.Duration
}

// Evaluator evaluates expressions in a fixed Mode. It holds no mutable
// state and may be shared between goroutines.
type Evaluator struct {
	mode   Mode
	arith  arithmetic
	logger logging.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger that receives completion records.
func WithLogger(l logging.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Evaluator for mode.
func New(mode Mode, opts ...Option) (*Evaluator, error) {
	e := &Evaluator{mode: mode, logger: logging.NewNopLogger()}
	switch mode {
	case ModeInt:
		e.arith = intArithmetic{}
	case ModeRat:
		e.arith = ratArithmetic{}
	default:
		return nil, apperrors.NewConfigError("unknown mode %q", mode)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Mode reports the evaluator's number domain.
func (e *Evaluator) Mode() Mode { return e.mode }

// Evaluate parses and evaluates expr. Failures are returned as
// apperrors.EvalError wrapping a SyntaxError, an invalid operand or the
// context error.
func (e *Evaluator) Evaluate(ctx context.Context, expr string) (res Result, err error) {
	tracer := otel.Tracer("eval")
	ctx, span := tracer.Start(ctx, "Evaluate")
	defer span.End()
	span.SetAttributes(attribute.String("mode", string(e.mode)))

	start := time.Now()
	defer func() {
		d := time.Since(start)
		metrics.ObserveEvaluation(string(e.mode), err, d)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return
		}
		span.SetAttributes(attribute.Int("digits", res.Digits))
		e.logger.Debug("evaluation completed",
			logging.String("mode", string(e.mode)),
			logging.Int("digits", res.Digits),
			logging.Float64("duration", d.Seconds()),
		)
	}()

	expr = strings.TrimSpace(expr)
	if err := ctx.Err(); err != nil {
		return Result{}, apperrors.EvalError{Expr: expr, Cause: err}
	}
	tree, err := parse(expr)
	if err != nil {
		return Result{}, apperrors.EvalError{Expr: expr, Cause: err}
	}
	v, err := e.run(ctx, tree)
	if err != nil {
		return Result{}, apperrors.EvalError{Expr: expr, Cause: err}
	}
	return Result{
		Expr:     expr,
		Value:    v,
		Digits:   Digits(v),
		Duration: time.Since(start),
	}, nil
}

type outcome struct {
	v   Value
	err error
}

// run walks tree on its own goroutine so a deadline is honoured even while
// a single long operator (a huge pow or division) is in progress. The core
// has no cancellation points; an abandoned walk stops at the next operator
// boundary and its values are discarded.
func (e *Evaluator) run(ctx context.Context, tree node) (Value, error) {
	done := make(chan outcome, 1)
	go func() {
		v, err := e.walk(ctx, tree)
		done <- outcome{v, err}
	}()
	select {
	case o := <-done:
		if o.err == nil {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		return o.v, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Evaluator) walk(ctx context.Context, n node) (Value, error) {
	switch n := n.(type) {
	case numberNode:
		return e.arith.number(n.value), nil
	case unaryNode:
		v, err := e.walk(ctx, n.operand)
		if err != nil {
			return nil, err
		}
		return e.arith.negate(v), nil
	case binaryNode:
		left, err := e.walk(ctx, n.left)
		if err != nil {
			return nil, err
		}
		right, err := e.walk(ctx, n.right)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.arith.binary(n.op, left, right)
		if err != nil {
			return nil, err
		}
		return v, ctx.Err()
	case callNode:
		args := make([]Value, len(n.args))
		for i, a := range n.args {
			v, err := e.walk(ctx, a)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.arith.call(n.name, args)
		if err != nil {
			return nil, err
		}
		return v, ctx.Err()
	}
	return nil, fmt.Errorf("unexpected node %T", n)
}

// Digits returns the number of decimal digits printed for v, excluding
// the sign and the fraction bar.
func Digits(v Value) int {
	switch v := v.(type) {
	case *bigint.Int:
		return v.Len()
	case *rational.Rat:
		n := v.Num().Len()
		if !v.IsInt() {
			n += v.Denom().Len()
		}
		return n
	}
	return len(v.String())
}
