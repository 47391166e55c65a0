package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisState string

const (
	StateIdle       AnalysisState = "idle"
	StateExtracting AnalysisState = "extracting"
	StateValidating AnalysisState = "validating"
	StatePrompting  AnalysisState = "prompting"
	StateInferring  AnalysisState = "inferring"
	StateRendered   AnalysisState = "rendered"
	StateErrored    AnalysisState = "errored"
)

// CritiqueResult is the model's answer, kept verbatim.
type CritiqueResult string

// AnalysisOutcome is the result of one pipeline run: either Critique is set and
// State is StateRendered, or Err is set and State is StateErrored. FailedAt
// records the stage that produced Err.
type AnalysisOutcome struct {
	RequestID uuid.UUID
	State     AnalysisState
	FailedAt  AnalysisState
	Critique  CritiqueResult
	Err       error
	Truncated bool
	Duration  time.Duration
}

func (o *AnalysisOutcome) OK() bool {
	return o.Err == nil && o.State == StateRendered
}
