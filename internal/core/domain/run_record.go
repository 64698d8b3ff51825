package domain

import "time"

// RunOutcome is the result of a recorded run.
type RunOutcome string

const (
	// OutcomeSucceeded marks a run that finished without error.
	OutcomeSucceeded RunOutcome = "succeeded"
	// OutcomeFailed marks a run that returned an error.
	OutcomeFailed RunOutcome = "failed"
)

// RunRecord remembers the last native run for a host.
type RunRecord struct {
	Host        string     `json:"host"`
	Profile     string     `json:"profile,omitzero"`
	Fingerprint string     `json:"fingerprint"`
	Outcome     RunOutcome `json:"outcome"`
	Timestamp   time.Time  `json:"timestamp,omitzero"`
}
