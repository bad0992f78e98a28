package engine

import "fmt"

// ValidationError reports an out-of-range or nonsensical scalar input. It is
// always raised before any computation; the engine never returns partial
// results alongside it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ResourceLimitError reports a workload above a configured ceiling. The bound
// is a policy choice, not a domain-correctness one, so it is kept distinct
// from ValidationError.
type ResourceLimitError struct {
	Field string
	Value int
	Limit int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("%s %d exceeds configured limit %d", e.Field, e.Value, e.Limit)
}
