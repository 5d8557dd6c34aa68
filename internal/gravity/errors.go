package gravity

import "fmt"

// ValidationError reports physically invalid initial-condition data.
type ValidationError struct {
	Body    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("invalid body data: %s", e.Message)
	}
	return fmt.Sprintf("invalid body %q: %s", e.Body, e.Message)
}

// ConfigurationError reports an unrecognized unit name or an invalid
// engine parameter.
type ConfigurationError struct {
	Param   string
	Value   string
	Message string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("bad configuration %s=%s: %s", e.Param, e.Value, e.Message)
}

// DegeneracyError reports two bodies at zero (or near-zero) separation,
// for which the pairwise force is undefined. It is never corrected
// silently; callers may treat it as simulation termination.
type DegeneracyError struct {
	BodyA, BodyB string
	Step         int
}

func (e DegeneracyError) Error() string {
	return fmt.Sprintf("step %d: bodies %q and %q coincide, force undefined", e.Step, e.BodyA, e.BodyB)
}
