package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "signgate"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry      *prom.Registry
	duration      prom.Histogram
	outcomes      *prom.CounterVec
	missingFields *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		duration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "gate_evaluation_duration_seconds",
			Help:      "Duration of release-signing gate evaluations",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "gate_outcomes_total",
			Help:      "Gate evaluations by outcome and whether a release task was requested",
		}, []string{"outcome", "release"}),
		missingFields: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "gate_missing_fields_total",
			Help:      "Credential files rejected for a missing key, by key",
		}, []string{"field"}),
	}
	reg.MustRegister(pr.duration, pr.outcomes, pr.missingFields)
	return pr
}

func (p *PrometheusRecorder) ObserveEvaluationDuration(d time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncOutcome(outcome OutcomeLabel, release bool) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome), strconv.FormatBool(release)).Inc()
}

func (p *PrometheusRecorder) IncMissingField(field string) {
	if p == nil || p.missingFields == nil {
		return
	}
	p.missingFields.WithLabelValues(field).Inc()
}

// Registry exposes the underlying registry for gathering.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// WriteTextfile writes all registered metrics to path in the text exposition
// format. The write is atomic (temp file + rename).
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.registry)
}
