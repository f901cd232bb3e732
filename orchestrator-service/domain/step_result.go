package domain

// StepResult is the tagged outcome of one forward step execution. Expected
// business failures (a declined payment, a vehicle no longer available) are
// modeled as Failure values; Go errors are reserved for transport and
// infrastructure faults.
type StepResult struct {
	failed bool
	reason string
	data   map[string]interface{}
}

// StepSuccess builds a successful outcome carrying the step's result data
func StepSuccess(data map[string]interface{}) StepResult {
	return StepResult{data: data}
}

// StepFailure builds a failed outcome carrying the business reason
func StepFailure(reason string) StepResult {
	return StepResult{failed: true, reason: reason}
}

// Failed reports whether the step failed for a business reason
func (r StepResult) Failed() bool {
	return r.failed
}

// Reason returns the business failure reason, empty on success
func (r StepResult) Reason() string {
	return r.reason
}

// Data returns the step result data, nil on failure
func (r StepResult) Data() map[string]interface{} {
	return r.data
}
