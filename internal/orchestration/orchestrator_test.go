package orchestration_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/orchestration/mocks"
)

func intResult(expr string, v int64) eval.Result {
	return eval.Result{Expr: expr, Value: bigint.NewInt(v), Digits: 1}
}

// TestExecuteBatch verifies that results come back in input order with
// their errors attached.
func TestExecuteBatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	evaluator := mocks.NewMockEvaluator(ctrl)
	failure := errors.New("boom")
	evaluator.EXPECT().Evaluate(gomock.Any(), "1+1").Return(intResult("1+1", 2), nil)
	evaluator.EXPECT().Evaluate(gomock.Any(), "bad").Return(eval.Result{}, failure)
	evaluator.EXPECT().Evaluate(gomock.Any(), "2*3").Return(intResult("2*3", 6), nil)

	exprs := []string{"1+1", "bad", "2*3"}
	results := orchestration.ExecuteBatch(context.Background(), evaluator, exprs, 2, orchestration.NullProgressReporter{}, io.Discard)

	if len(results) != len(exprs) {
		t.Fatalf("got %d results, want %d", len(results), len(exprs))
	}
	for i, r := range results {
		if r.Index != i || r.Expr != exprs[i] {
			t.Errorf("result %d = {%d %q}, want {%d %q}", i, r.Index, r.Expr, i, exprs[i])
		}
	}
	if results[0].Err != nil || results[0].Result.Value.String() != "2" {
		t.Errorf("result 0 = %v, %v", results[0].Result.Value, results[0].Err)
	}
	if !errors.Is(results[1].Err, failure) {
		t.Errorf("result 1 error = %v, want %v", results[1].Err, failure)
	}
	if got := orchestration.SuccessCount(results); got != 2 {
		t.Errorf("SuccessCount = %d, want 2", got)
	}
}

func TestExecuteBatch_ProgressReporter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	evaluator := mocks.NewMockEvaluator(ctrl)
	evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(intResult("x", 1), nil).Times(5)

	var updates []orchestration.ProgressUpdate
	reporter := mocks.NewMockProgressReporter(ctrl)
	reporter.EXPECT().DisplayProgress(gomock.Any(), gomock.Any(), 5, gomock.Any()).
		Do(func(wg *sync.WaitGroup, ch <-chan orchestration.ProgressUpdate, _ int, _ io.Writer) {
			defer wg.Done()
			for u := range ch {
				updates = append(updates, u)
			}
		})

	orchestration.ExecuteBatch(context.Background(), evaluator, make([]string, 5), 0, reporter, io.Discard)

	if len(updates) != 5 {
		t.Fatalf("got %d progress updates, want 5", len(updates))
	}
	seen := make(map[int]bool)
	for _, u := range updates {
		seen[u.Done] = true
		if u.Total != 5 {
			t.Errorf("update total = %d, want 5", u.Total)
		}
	}
	for d := 1; d <= 5; d++ {
		if !seen[d] {
			t.Errorf("no update with Done = %d", d)
		}
	}
}

func TestExecuteBatch_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	var mu sync.Mutex
	inFlight, peak := 0, 0
	evaluator := mocks.NewMockEvaluator(ctrl)
	evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, expr string) (eval.Result, error) {
			mu.Lock()
			inFlight++
			peak = max(peak, inFlight)
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			inFlight--
			mu.Unlock()
			return intResult(expr, 0), nil
		}).Times(12)

	orchestration.ExecuteBatch(context.Background(), evaluator, make([]string, 12), 3, nil, io.Discard)
	if peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
}

func TestExecuteBatch_Canceled(t *testing.T) {
	t.Parallel()

	e, err := eval.New(eval.ModeInt)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := orchestration.ExecuteBatch(ctx, e, []string{"1+1", "2+2"}, 1, nil, io.Discard)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%q: error = %v, want context.Canceled", r.Expr, r.Err)
		}
	}
}

func TestAnalyzeResults(t *testing.T) {
	t.Parallel()

	t.Run("all succeed", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockResultPresenter(ctrl)
		results := []orchestration.EvaluationResult{
			{Index: 0, Expr: "1", Result: intResult("1", 1)},
			{Index: 1, Expr: "2", Result: intResult("2", 2)},
		}
		gomock.InOrder(
			presenter.EXPECT().PresentResult(results[0], gomock.Any()),
			presenter.EXPECT().PresentResult(results[1], gomock.Any()),
			presenter.EXPECT().PresentSummary(results, gomock.Any()),
		)
		if code := orchestration.AnalyzeResults(results, presenter, io.Discard); code != apperrors.ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
		}
	})

	t.Run("first failure wins", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockResultPresenter(ctrl)
		results := []orchestration.EvaluationResult{
			{Index: 0, Expr: "1/0", Err: apperrors.EvalError{Expr: "1/0", Cause: bigint.ErrDivisionByZero}},
			{Index: 1, Expr: "2", Result: intResult("2", 2)},
			{Index: 2, Expr: "(", Err: apperrors.SyntaxError{Input: "(", Offset: 1}},
		}
		presenter.EXPECT().HandleError(results[0].Err, gomock.Any(), gomock.Any()).Return(apperrors.ExitErrorInvalidOperand)
		presenter.EXPECT().PresentResult(results[1], gomock.Any())
		presenter.EXPECT().HandleError(results[2].Err, gomock.Any(), gomock.Any()).Return(apperrors.ExitErrorSyntax)
		presenter.EXPECT().PresentSummary(gomock.Any(), gomock.Any())

		var out bytes.Buffer
		if code := orchestration.AnalyzeResults(results, presenter, &out); code != apperrors.ExitErrorInvalidOperand {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorInvalidOperand)
		}
	})
}
