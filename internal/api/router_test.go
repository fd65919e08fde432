package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/enterprise-qa/test-metrics-exporter/internal/api"
	"github.com/enterprise-qa/test-metrics-exporter/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testRouter() http.Handler {
	return api.NewRouter(api.Dependencies{
		Scan: func() models.Summary {
			return models.Summary{
				Total:            1,
				Passed:           1,
				ByCategory:       map[string]int{"smoke": 1},
				PassRateByModule: map[string]float64{"api": 100},
			}
		},
	})
}

func TestRouter_Metrics(t *testing.T) {
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "test_total 1\n")
	assert.Contains(t, w.Body.String(), `test_count_by_category{category="smoke"} 1`)
}

func TestRouter_Health(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"status": "healthy"}`, w.Body.String())
}

func TestRouter_UnknownPath(t *testing.T) {
	req := httptest.NewRequest("GET", "/foo", nil)
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRouter_UnknownMethod(t *testing.T) {
	req := httptest.NewRequest("POST", "/metrics", nil)
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}
