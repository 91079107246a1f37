// Package server assembles the router, middleware stack and http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/vmlx-responder/internal/http/health"
	"github.com/janisto/vmlx-responder/internal/http/v1/routes"
	"github.com/janisto/vmlx-responder/internal/platform/config"
	applog "github.com/janisto/vmlx-responder/internal/platform/logging"
	appmiddleware "github.com/janisto/vmlx-responder/internal/platform/middleware"
	"github.com/janisto/vmlx-responder/internal/platform/respond"
)

const (
	docsPath        = "/api-docs"
	maxRequestBody  = 1 << 20 // 1 MB
	shutdownTimeout = 10 * time.Second
)

// NewRouter builds the chi router with the full middleware stack, the
// problem-details fallbacks, the health probe and the huma API.
func NewRouter(cfg config.Config, version string) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For. Only safe behind a proxy
		// that overwrites them.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBody),
		applog.RequestLogger(cfg.ProjectID),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(version))

	humaCfg := huma.DefaultConfig("vmlx Responder API", version)
	humaCfg.DocsPath = docsPath
	api := humachi.New(router, humaCfg)
	routes.Register(api)

	return router
}

// New returns an http.Server for handler with bounded timeouts and header size.
func New(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// Listen binds addr before any serving starts, so an occupied port is
// reported to the caller instead of inside a goroutine.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Run serves on ln until ctx is done, then shuts srv down, giving in-flight
// requests up to ten seconds to finish. A serve failure is returned as is.
func Run(ctx context.Context, srv *http.Server, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
