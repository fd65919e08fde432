package handler

import (
	"net/http"
	"time"

	"github.com/enterprise-qa/test-metrics-exporter/internal/exposition"
	"github.com/enterprise-qa/test-metrics-exporter/pkg/models"
)

// Scanner produces a fresh Summary. The real implementation is a closure
// over aggregate.Scan and the configured results directory; tests substitute
// a canned Summary.
type Scanner func() models.Summary

// NewMetricsHandler returns the handler for GET /metrics. Every request runs
// its own aggregation pass over the results directory, so the response always
// reflects the directory contents at scrape time and concurrent scrapes never
// share state.
func NewMetricsHandler(scan Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := exposition.Render(scan(), time.Now())

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}
