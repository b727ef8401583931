package schedulers

import "fmt"

const (
	DefaultTimeQuantum       = 2
	DefaultHighQuantum       = 2
	DefaultLowQuantum        = 4
	DefaultPriorityThreshold = 5
)

// Options carries the policy-specific configuration. Fields a policy does
// not use are ignored by it.
type Options struct {
	TimeQuantum       int `json:"time_quantum" yaml:"time_quantum"`             // rr
	HighQuantum       int `json:"high_quantum" yaml:"high_quantum"`             // mlq
	LowQuantum        int `json:"low_quantum" yaml:"low_quantum"`               // mlq
	PriorityThreshold int `json:"priority_threshold" yaml:"priority_threshold"` // mlq
}

func DefaultOptions() Options {
	return Options{
		TimeQuantum:       DefaultTimeQuantum,
		HighQuantum:       DefaultHighQuantum,
		LowQuantum:        DefaultLowQuantum,
		PriorityThreshold: DefaultPriorityThreshold,
	}
}

// InvalidOptionError reports a configuration value that violates its
// constraint. It is returned before any simulation state is touched.
type InvalidOptionError struct {
	Policy Policy
	Option string
	Value  int
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%s: invalid option %s=%d: %s", e.Policy, e.Option, e.Value, e.Reason)
}

func (o Options) validate(policy Policy) error {
	switch policy {
	case RoundRobin:
		if o.TimeQuantum <= 0 {
			return &InvalidOptionError{Policy: policy, Option: "time_quantum", Value: o.TimeQuantum, Reason: "must be > 0"}
		}
	case MultilevelQueue:
		if o.HighQuantum <= 0 {
			return &InvalidOptionError{Policy: policy, Option: "high_quantum", Value: o.HighQuantum, Reason: "must be > 0"}
		}
		if o.LowQuantum <= 0 {
			return &InvalidOptionError{Policy: policy, Option: "low_quantum", Value: o.LowQuantum, Reason: "must be > 0"}
		}
	}
	return nil
}
