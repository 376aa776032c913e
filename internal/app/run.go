package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Flarenzy/simple-ipam/internal/auth"
	"github.com/Flarenzy/simple-ipam/internal/domain"
	apihttp "github.com/Flarenzy/simple-ipam/internal/http"
	"github.com/Flarenzy/simple-ipam/internal/web"
)

const shutdownTimeout = 5 * time.Second

// Run listens on cfg.Port and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer listener.Close()

	return Serve(ctx, cfg, listener)
}

// Serve opens the store, wires the API and serves on listener until ctx is
// cancelled. Startup failures are returned before any request is accepted.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	service := domain.NewLoggingNetworkService(logger, domain.NewNetworkService(st.subnets, st.ips))
	api := apihttp.NewAPI(logger, st, service, authenticator,
		apihttp.WithDashboard(web.NewDashboard(logger, web.Templates, cfg.Version)),
		apihttp.WithCORSOrigins(cfg.CORSAllowedOrigins),
	)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String(), "version", cfg.Version)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		Audience: cfg.AuthAudience,
		JWKSURL:  cfg.AuthJWKSURL,
	})
}
