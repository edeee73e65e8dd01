package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tippy/internal/handlers"
	"tippy/internal/observability"
	"tippy/internal/tipcalc"
)

// NewRouter assembles the HTTP surface: panic recovery, request IDs, tracing
// and access logging (in that order, so the access log sees the trace and
// the request ID), then /health, /metrics and the /tip routes served by tips.
func NewRouter(tips *tipcalc.Handler) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	tipcalc.RegisterRoutes(r, tips)

	return r
}
