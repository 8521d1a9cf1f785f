package body

import "fmt"

// ValidationError reports malformed input to NewRegistry. It is always
// surfaced before any integration work begins.
type ValidationError struct {
	Body   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("body: %s", e.Reason)
	}
	return fmt.Sprintf("body %q: %s", e.Body, e.Reason)
}

// ShapeError reports a state vector whose length does not match the
// registry's 2*n*dim layout. It indicates a contract violation between
// components, not a recoverable runtime condition.
type ShapeError struct {
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("body: state vector length %d, want %d", e.Got, e.Want)
}
