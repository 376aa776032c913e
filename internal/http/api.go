package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/simple-ipam/internal/auth"
	"github.com/Flarenzy/simple-ipam/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	Health        HealthChecker
	Service       domain.NetworkService
	authenticator auth.Authenticator
	dashboard     http.Handler
	corsOrigins   []string
}

type Option func(*API)

// WithDashboard serves h on / and /dashboard.
func WithDashboard(h http.Handler) Option {
	return func(a *API) {
		a.dashboard = h
	}
}

// WithCORSOrigins restricts cross-origin access; "*" allows any origin.
func WithCORSOrigins(origins []string) Option {
	return func(a *API) {
		a.corsOrigins = origins
	}
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.NetworkService, authenticator auth.Authenticator, opts ...Option) *API {
	a := &API{
		Logger:        logger,
		Health:        health,
		Service:       service,
		authenticator: authenticator,
		corsOrigins:   []string{"*"},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", a.handleHealth)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("GET /api/subnets", a.handleListSubnets)
	mux.HandleFunc("POST /api/subnets", a.handleCreateSubnet)
	mux.HandleFunc("GET /api/subnets/{id}", a.handleGetSubnetByID)
	mux.HandleFunc("PUT /api/subnets/{id}", a.handleUpdateSubnet)
	mux.HandleFunc("DELETE /api/subnets/{id}", a.handleDeleteSubnetByID)
	mux.HandleFunc("GET /api/subnets/{id}/stats", a.handleSubnetStats)

	mux.HandleFunc("GET /api/subnets/{id}/ips", a.handleGetIPsBySubnetID)
	mux.HandleFunc("POST /api/subnets/{id}/ips", a.handleCreateIPBySubnetID)
	mux.HandleFunc("PATCH /api/subnets/{id}/ips/{ipID}", a.handleUpdateIP)
	mux.HandleFunc("DELETE /api/subnets/{id}/ips/{ipID}", a.handleDeleteIP)

	if a.dashboard != nil {
		mux.Handle("GET /{$}", a.dashboard)
		mux.Handle("GET /dashboard", a.dashboard)
	}

	var h http.Handler = mux
	h = a.authMiddleware(h)
	h = a.corsMiddleware(h)
	h = securityHeaders(h)
	h = a.logRequests(h)
	h = requestID(h)
	return h
}
