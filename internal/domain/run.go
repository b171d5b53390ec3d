package domain

import "time"

// RunStatus enumerates pipeline milestones for a persisted run.
type RunStatus string

const (
	StatusScripted  RunStatus = "scripted"
	StatusBlocked   RunStatus = "blocked"
	StatusRendered  RunStatus = "rendered"
	StatusAssembled RunStatus = "assembled"
)

// RunRecord is the persisted snapshot of one pipeline invocation, kept
// for history and audit.
type RunRecord struct {
	ID         string
	Topic      string
	Category   string
	SceneCount int
	Duration   float64
	Status     RunStatus
	ScriptJSON string
	VideoPath  string
	CreatedAt  time.Time
}
