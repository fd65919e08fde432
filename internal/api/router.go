package api

import (
	"net/http"

	"github.com/enterprise-qa/test-metrics-exporter/internal/api/handler"
	mw "github.com/enterprise-qa/test-metrics-exporter/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

// Dependencies holds the handler dependencies for the router.
type Dependencies struct {
	Scan handler.Scanner
}

// NewRouter builds the Chi router. Per-request logging is deliberately not
// mounted: the scrape interval would flood the log with identical lines, and
// the startup announcement plus per-file skip diagnostics are the only
// console output the exporter produces.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.Recovery)

	r.Get("/metrics", handler.NewMetricsHandler(deps.Scan))
	r.Get("/health", handler.Health)

	// Anything else, any method: 404 with an empty body.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
