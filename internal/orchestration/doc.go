// Package orchestration runs GCD jobs through the selected algorithms and
// aggregates the results for comparison. It decouples business logic from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
