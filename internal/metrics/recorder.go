package metrics

import "time"

// OutcomeLabel enumerates gate evaluation outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSkipped      OutcomeLabel = "skipped"
	OutcomeConfigured   OutcomeLabel = "configured"
	OutcomeMissingFile  OutcomeLabel = "missing_file"
	OutcomeMissingField OutcomeLabel = "missing_field"
	OutcomeFailed       OutcomeLabel = "failed"
)

// Recorder defines observability hooks for gate evaluations.
type Recorder interface {
	ObserveEvaluationDuration(d time.Duration)
	IncOutcome(outcome OutcomeLabel, release bool)
	IncMissingField(field string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveEvaluationDuration(time.Duration) {}
func (NoopRecorder) IncOutcome(OutcomeLabel, bool)           {}
func (NoopRecorder) IncMissingField(string)                  {}
