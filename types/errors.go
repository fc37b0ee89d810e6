package types

import "fmt"

// Remote failure kinds, distinguished so callers can log cause categories.
const (
	RemoteErrMalformedResponse = "malformed_response"
	RemoteErrCallFailure       = "call_failure"
	RemoteErrMissingField      = "missing_field"
)

// RemoteReasoningError wraps a failure of an external reasoning call at a
// stage boundary. Fatal errors abort the pipeline; non-fatal ones are
// recovered by a local fallback.
type RemoteReasoningError struct {
	Stage string
	Kind  string
	Err   error
}

func (e *RemoteReasoningError) Error() string {
	return fmt.Sprintf("remote reasoning failed in %s stage (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *RemoteReasoningError) Unwrap() error {
	return e.Err
}

// NewRemoteReasoningError builds a stage-tagged remote failure.
func NewRemoteReasoningError(stage, kind string, err error) *RemoteReasoningError {
	return &RemoteReasoningError{Stage: stage, Kind: kind, Err: err}
}
