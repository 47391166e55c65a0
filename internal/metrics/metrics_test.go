package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineMetricsCounters(t *testing.T) {
	m := NewPipelineMetrics()

	m.IncAnalyses("rendered")
	m.IncAnalyses("rendered")
	m.IncAnalyses("empty_content")
	m.IncTruncated()
	m.ObserveInference("openai", time.Second, nil)
	m.ObserveInference("openai", time.Second, errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.analysesTotal.WithLabelValues("rendered")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.analysesTotal.WithLabelValues("empty_content")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.truncatedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.inferenceTotal.WithLabelValues("openai", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.inferenceTotal.WithLabelValues("openai", "error")))
}

func TestPipelineMetricsHandlerExposesSeries(t *testing.T) {
	m := NewPipelineMetrics()
	m.IncAnalyses("rendered")
	m.ObserveStage("extracting", 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `resume_critiquer_pipeline_analyses_total{outcome="rendered"} 1`)
	assert.Contains(t, body, `resume_critiquer_pipeline_stage_duration_seconds_count{stage="extracting"} 1`)
}
