// Package orchestration runs batches of expression evaluations
// concurrently and aggregates their results. It decouples the batch logic
// from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
