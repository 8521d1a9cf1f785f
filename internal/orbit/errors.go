package orbit

import "fmt"

// IntegrationError reports a solver failure partway through the requested
// time span. The accompanying Trajectory is truncated at the last valid
// sample; the call is never retried with different parameters.
type IntegrationError struct {
	Time   float64
	Sample int
	Err    error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("orbit: integration failed at t=%.6g (sample %d): %v", e.Time, e.Sample, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }
