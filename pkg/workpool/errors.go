// SPDX-License-Identifier: MPL-2.0

package workpool

import (
	"fmt"
	"strings"
)

// ExecutionError records the failure of a single unit of work.
type ExecutionError struct {
	// UnitIdentifier is the identifier of the failed unit. For failures that
	// cannot be attributed to a unit (a recovered worker panic), it carries a
	// worker identifier instead.
	UnitIdentifier string
	// Message describes the failure.
	Message string
}

func (e ExecutionError) Error() string {
	return fmt.Sprintf("[%s] %s", e.UnitIdentifier, e.Message)
}

// AggregatedError collects the execution errors of one Pool.Execute call.
// It is never empty.
type AggregatedError struct {
	errors []ExecutionError
}

// NewAggregatedError builds an aggregate from at least one execution error.
// Constructing an empty aggregate is a programming error and panics.
func NewAggregatedError(errors []ExecutionError) *AggregatedError {
	if len(errors) == 0 {
		panic("workpool: AggregatedError cannot be empty")
	}
	return &AggregatedError{errors: errors}
}

// Errors returns all collected execution errors. The order reflects completion
// order and is not deterministic across runs.
func (e *AggregatedError) Errors() []ExecutionError {
	return e.errors
}

// First returns the first collected error.
func (e *AggregatedError) First() ExecutionError {
	return e.errors[0]
}

// Len returns the number of collected errors, always at least 1.
func (e *AggregatedError) Len() int {
	return len(e.errors)
}

func (e *AggregatedError) Error() string {
	if len(e.errors) == 1 {
		return fmt.Sprintf("execution failed: %s", e.errors[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "execution failed with %d errors:\n", len(e.errors))
	for i, err := range e.errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err)
	}
	return b.String()
}
