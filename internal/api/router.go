package api

import (
	"net/http"

	"delivery-cost-service/internal/api/handlers"
	"delivery-cost-service/internal/platform/metrics"
	"delivery-cost-service/internal/ports"
	"delivery-cost-service/internal/site"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	store ports.CoefficientStore,
	calcLog ports.CalculationLog,
	contacts ports.ContactRepository,
) http.Handler {
	mux := http.NewServeMux()

	estimateHandler := &handlers.EstimateHandler{Store: store, Log: calcLog}
	coeffHandler := &handlers.CoefficientHandler{Store: store}
	contactHandler := &handlers.ContactHandler{Repo: contacts}
	calcHandler := &handlers.CalculationHandler{Log: calcLog}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/calculate-delivery", estimateHandler.Calculate)
	mux.HandleFunc("/api/coefficients", coeffHandler.Get)
	mux.HandleFunc("/api/contact", contactHandler.Submit)
	mux.HandleFunc("/admin/update", coeffHandler.Update)
	mux.HandleFunc("/admin/calculations", calcHandler.List)
	mux.HandleFunc("/admin/contacts", contactHandler.List)

	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	// Embedded marketing and admin pages at / and /admin.
	site.Register(mux)

	return requestIDMiddleware(corsMiddleware(loggingMiddleware(mux)))
}
