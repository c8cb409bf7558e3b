package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "events_digest"

// Event sources
const (
	SourceSchedule = "schedule"
	SourceArts     = "arts"
)

// Recorder holds the metrics of a single run
type Recorder struct {
	registry *prometheus.Registry

	events       *prometheus.CounterVec
	rowsSkipped  *prometheus.CounterVec
	escalations  *prometheus.CounterVec
	iterations   prometheus.Gauge
	artifacts    *prometheus.CounterVec
	runDuration  prometheus.Gauge
	lastRunStamp prometheus.Gauge
}

// New creates a Recorder with its own registry
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Events kept for the requested range, by source",
		}, []string{"source"}),
		rowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Schedule rows or feed components dropped as malformed, by source",
		}, []string{"source"}),
		escalations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalation_total",
			Help:      "Schedule scrapes by escalation outcome",
		}, []string{"outcome"}),
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "escalation_iterations",
			Help:      "Load-more iterations used by the last schedule scrape",
		}),
		artifacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_written_total",
			Help:      "Output files written, by kind",
		}, []string{"kind"}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the run",
		}),
		lastRunStamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the run finished",
		}),
	}

	r.registry.MustRegister(
		r.events,
		r.rowsSkipped,
		r.escalations,
		r.iterations,
		r.artifacts,
		r.runDuration,
		r.lastRunStamp,
	)
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Events(source string, n int) {
	r.events.WithLabelValues(source).Add(float64(n))
}

func (r *Recorder) Skipped(source string, n int) {
	r.rowsSkipped.WithLabelValues(source).Add(float64(n))
}

// Escalation records the outcome label and iteration count of a schedule scrape
func (r *Recorder) Escalation(outcome string, iterations int) {
	r.escalations.WithLabelValues(outcome).Inc()
	r.iterations.Set(float64(iterations))
}

func (r *Recorder) Artifact(kind string) {
	r.artifacts.WithLabelValues(kind).Inc()
}

// Finish stamps the run duration and completion time
func (r *Recorder) Finish(started, finished time.Time) {
	r.runDuration.Set(finished.Sub(started).Seconds())
	r.lastRunStamp.Set(float64(finished.Unix()))
}

// WriteFile writes the registry to path in text exposition format. The file
// is replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
