package services

import "encoding/json"

// Phase is the lifecycle step of a remote-backed collection
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// Status is one of Idle, Loading, Ready or Failed(reason). Only a failed
// status carries a reason, so "loading with an error" cannot be built.
type Status struct {
	phase  Phase
	reason string
}

func idleStatus() Status    { return Status{phase: PhaseIdle} }
func loadingStatus() Status { return Status{phase: PhaseLoading} }
func readyStatus() Status   { return Status{phase: PhaseReady} }

func failedStatus(reason string) Status {
	return Status{phase: PhaseFailed, reason: reason}
}

func (s Status) Phase() Phase { return s.phase }

// Loading reports whether a fetch is in flight
func (s Status) Loading() bool { return s.phase == PhaseLoading }

// Err returns the failure reason, or "" unless the status is failed
func (s Status) Err() string { return s.reason }

func (s Status) MarshalJSON() ([]byte, error) {
	var errField *string
	if s.phase == PhaseFailed {
		errField = &s.reason
	}
	return json.Marshal(struct {
		Phase   Phase   `json:"phase"`
		Loading bool    `json:"loading"`
		Error   *string `json:"error"`
	}{s.phase, s.Loading(), errField})
}
