package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Multiplication kernel labels.
const (
	KernelSchoolbook = "schoolbook"
	KernelFFT        = "fft"
)

// Division operation labels.
const (
	DivQuo    = "quo"
	DivRem    = "rem"
	DivQuoRem = "quorem"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bigcalc_multiplications_total",
			Help: "Big integer multiplications by kernel",
		},
		[]string{"kernel"},
	)
	divisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bigcalc_divisions_total",
			Help: "Binary-doubling divisions by operation",
		},
		[]string{"op"},
	)
	operandErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bigcalc_invalid_operands_total",
			Help: "Operations refused because of a zero divisor, denominator or reciprocal",
		},
		[]string{"op"},
	)
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bigcalc_evaluations_total",
			Help: "Expression evaluations by mode and status",
		},
		[]string{"mode", "status"},
	)
	evaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bigcalc_evaluation_duration_seconds",
			Help:    "Duration of expression evaluations",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"mode"},
	)
)

// ObserveMultiplication counts one multiplication run by the given kernel.
func ObserveMultiplication(kernel string) {
	multiplicationsTotal.WithLabelValues(kernel).Inc()
}

// ObserveDivision counts one division, remainder or combined pass.
func ObserveDivision(op string) {
	divisionsTotal.WithLabelValues(op).Inc()
}

// ObserveInvalidOperand counts one refused operation.
func ObserveInvalidOperand(op string) {
	operandErrorsTotal.WithLabelValues(op).Inc()
}

// ObserveEvaluation records the outcome and duration of one evaluation.
func ObserveEvaluation(mode string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	evaluationsTotal.WithLabelValues(mode, status).Inc()
	evaluationDuration.WithLabelValues(mode).Observe(d.Seconds())
}
