package optim

import "fmt"

// ConfigError reports an invalid hyperparameter at optimizer construction.
//
// Constraint radii and penalty coefficients must be strictly positive for
// the whole optimizer lifetime, so construction fails fast before any
// parameter is touched.
type ConfigError struct {
	Field string  // Hyperparameter name (e.g. "kappa", "lambda")
	Value float64 // The rejected value
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s = %v (must be > 0)", e.Field, e.Value)
}

// ShapeError reports a malformed or mismatched tensor passed to an oracle
// or an update routine.
type ShapeError struct {
	Op      string // Operation that detected the problem (e.g. "lmo_nuclear")
	Details string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Details)
}

// NumericalError reports that an iterative numeric routine failed to
// converge within its iteration budget.
//
// Iterations and Residual describe the state at abandonment so a caller
// can decide whether to retry with a different initialization; the core
// never retries internally.
type NumericalError struct {
	Op         string
	Iterations int
	Residual   float64
}

// Error implements the error interface.
func (e *NumericalError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations (residual %.3e)",
		e.Op, e.Iterations, e.Residual)
}
