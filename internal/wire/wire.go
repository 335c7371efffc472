// internal/wire/wire.go
package wire

import (
	"net/http"

	"ticket-purchase/internal/adaptor"
	"ticket-purchase/internal/usecase"
	"ticket-purchase/pkg/metrics"
	"ticket-purchase/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(gateways *Gateways, logger *zap.Logger) *App {
	registry := prometheus.NewRegistry()
	purchaseMetrics := metrics.NewPurchaseMetrics(registry)

	// Initialize services dan handlers
	service := usecase.NewService(gateways.Payment, gateways.Reservation, purchaseMetrics, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, registry, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireTicket(r, handler.Ticket)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	return r
}
