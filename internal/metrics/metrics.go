package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives pipeline observations from the analyzer.
type Recorder interface {
	ObserveStage(stage string, duration time.Duration)
	ObserveInference(provider string, duration time.Duration, err error)
	IncAnalyses(outcome string)
	IncTruncated()
}

type PipelineMetrics struct {
	registry *prometheus.Registry

	analysesTotal     *prometheus.CounterVec
	truncatedTotal    prometheus.Counter
	stageDuration     *prometheus.HistogramVec
	inferenceDuration *prometheus.HistogramVec
	inferenceTotal    *prometheus.CounterVec
}

func NewPipelineMetrics() *PipelineMetrics {
	registry := prometheus.NewRegistry()

	analysesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_critiquer",
			Subsystem: "pipeline",
			Name:      "analyses_total",
			Help:      "Total analysis runs by outcome.",
		},
		[]string{"outcome"},
	)
	truncatedTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resume_critiquer",
			Subsystem: "pipeline",
			Name:      "truncated_total",
			Help:      "Total analyses whose resume text was cut to the configured limit.",
		},
	)
	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_critiquer",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
	inferenceDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_critiquer",
			Subsystem: "inference",
			Name:      "duration_seconds",
			Help:      "Chat completion latency in seconds.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"provider"},
	)
	inferenceTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_critiquer",
			Subsystem: "inference",
			Name:      "requests_total",
			Help:      "Total chat completion requests by provider and result.",
		},
		[]string{"provider", "result"},
	)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		analysesTotal,
		truncatedTotal,
		stageDuration,
		inferenceDuration,
		inferenceTotal,
	)

	return &PipelineMetrics{
		registry:          registry,
		analysesTotal:     analysesTotal,
		truncatedTotal:    truncatedTotal,
		stageDuration:     stageDuration,
		inferenceDuration: inferenceDuration,
		inferenceTotal:    inferenceTotal,
	}
}

func (m *PipelineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PipelineMetrics) ObserveStage(stage string, duration time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

func (m *PipelineMetrics) ObserveInference(provider string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.inferenceTotal.WithLabelValues(provider, result).Inc()
	m.inferenceDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *PipelineMetrics) IncAnalyses(outcome string) {
	m.analysesTotal.WithLabelValues(outcome).Inc()
}

func (m *PipelineMetrics) IncTruncated() {
	m.truncatedTotal.Inc()
}

type noopRecorder struct{}

// NewNoop returns a Recorder that discards everything.
func NewNoop() Recorder {
	return noopRecorder{}
}

func (noopRecorder) ObserveStage(string, time.Duration)            {}
func (noopRecorder) ObserveInference(string, time.Duration, error) {}
func (noopRecorder) IncAnalyses(string)                            {}
func (noopRecorder) IncTruncated()                                 {}
