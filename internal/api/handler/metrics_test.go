package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/enterprise-qa/test-metrics-exporter/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestMetricsHandler_ScansPerRequest(t *testing.T) {
	calls := 0
	h := NewMetricsHandler(func() models.Summary {
		calls++
		return models.Summary{
			Total:            calls,
			ByCategory:       map[string]int{},
			PassRateByModule: map[string]float64{},
		}
	})

	for i := 1; i <= 3; i++ {
		req := httptest.NewRequest("GET", "/metrics", nil)
		w := httptest.NewRecorder()
		h(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "# TYPE test_total gauge")
	}

	// No caching: each scrape triggers its own aggregation pass.
	assert.Equal(t, 3, calls)
}

func TestMetricsHandler_ContentType(t *testing.T) {
	h := NewMetricsHandler(func() models.Summary { return models.Summary{} })

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	h(w, req)

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestHealth_FixedPayload(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"status": "healthy"}`, w.Body.String())
}
