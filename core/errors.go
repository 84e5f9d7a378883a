package core

import "fmt"

// InvalidInputError reports a missing, empty, or malformed top-level
// input collection. The computation aborts before any aggregation.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input data: %s", e.Reason)
}

// InvalidOptionsError reports a missing strategy function in Options.
type InvalidOptionsError struct {
	Reason string
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("invalid options: %s", e.Reason)
}

// StrategyError wraps a failure returned by a caller-supplied strategy
// function. The wrapped error is available via errors.Unwrap.
type StrategyError struct {
	Strategy string // "calculateRevenue" or "calculateBonus"
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s failed: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}
