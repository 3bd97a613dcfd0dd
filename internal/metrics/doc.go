// Package metrics holds the Prometheus collectors shared by the arithmetic
// core and the evaluator, and a runtime memory sampler used for verbose
// reports.
package metrics
