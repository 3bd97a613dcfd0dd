package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// JSONResult is the record written per expression by --json. Value is the
// decimal (or "n/d") text so arbitrarily large values survive JSON
// number parsers.
type JSONResult struct {
	Index      int    `json:"index"`
	Expr       string `json:"expr"`
	Value      string `json:"value,omitempty"`
	Digits     int    `json:"digits,omitempty"`
	DurationNs int64  `json:"duration_ns"`
	Error      string `json:"error,omitempty"`
	ExitCode   int    `json:"exit_code,omitempty"`
}

// FormatQuietResult returns the bare value of a result.
func FormatQuietResult(res orchestration.EvaluationResult) string {
	return res.Result.Value.String()
}

// DisplayQuietResult writes the bare value followed by a newline.
func DisplayQuietResult(out io.Writer, res orchestration.EvaluationResult) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayJSONResult writes one JSONResult line.
func DisplayJSONResult(out io.Writer, res orchestration.EvaluationResult) {
	writeJSON(out, JSONResult{
		Index:      res.Index,
		Expr:       res.Expr,
		Value:      res.Result.Value.String(),
		Digits:     res.Result.Digits,
		DurationNs: res.Duration.Nanoseconds(),
	})
}

// DisplayJSONError writes a JSONResult line describing err and returns
// the matching exit code.
func DisplayJSONError(out io.Writer, err error, duration time.Duration) int {
	code := apperrors.ExitCodeFor(err)
	rec := JSONResult{DurationNs: duration.Nanoseconds(), Error: err.Error(), ExitCode: code}
	var evalErr apperrors.EvalError
	if errors.As(err, &evalErr) {
		rec.Expr = evalErr.Expr
	}
	writeJSON(out, rec)
	return code
}

func writeJSON(out io.Writer, v any) {
	enc := json.NewEncoder(out)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(out, "{\"error\":%q}\n", err.Error())
	}
}
