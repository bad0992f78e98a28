package domain

// Limits are the workload ceilings enforced before any computation starts.
// They are policy/performance bounds, not domain-correctness ones; exceeding
// them yields a ResourceLimitError rather than a ValidationError.
type Limits struct {
	MaxEnumerationPeriods int
	MaxSimulationPeriods  int
	MaxSimulations        int
}

func DefaultLimits() Limits {
	return Limits{
		MaxEnumerationPeriods: 20,
		MaxSimulationPeriods:  30,
		MaxSimulations:        50000,
	}
}
