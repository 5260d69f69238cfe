package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/vadimbarashkov/memshort/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/memshort/internal/config"
	"github.com/vadimbarashkov/memshort/internal/metrics"
	"github.com/vadimbarashkov/memshort/internal/shortcode"
	"github.com/vadimbarashkov/memshort/internal/usecase"

	deliveryHTTP "github.com/vadimbarashkov/memshort/internal/adapter/delivery/http"
)

const shutdownTimeout = 10 * time.Second

func newLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger("url-shortener", httplog.Options{
		LogLevel:        cfg.Log.SlogLevel(),
		JSON:            cfg.Log.JSON,
		Concise:         !cfg.Log.JSON,
		Tags:            map[string]string{"env": cfg.Env},
		QuietDownRoutes: []string{"/", "/api/health", "/metrics"},
		QuietDownPeriod: 10 * time.Second,
	})
}

// newHandler wires the store, the use case and the router. The store is owned
// by the returned handler and lives as long as it does.
func newHandler(cfg *config.Config, logger *httplog.Logger) http.Handler {
	urlRepo := memory.NewURLRepository()
	urlUseCase := usecase.NewURLUseCase(shortcode.NewGenerator(cfg.ShortCodeLength), urlRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return deliveryHTTP.NewRouter(logger, urlUseCase, deliveryHTTP.RouterOptions{
		BaseURL:         cfg.BaseURL,
		ShortCodeLength: cfg.ShortCodeLength,
		Metrics:         metrics.New(reg, urlRepo),
		Gatherer:        reg,
	})
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := newLogger(cfg)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        newHandler(cfg, logger),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		logger.Info("starting server", "addr", server.Addr, "env", cfg.Env)

		switch {
		case cfg.Env == config.EnvProd && cfg.HTTPServer.TLSEnabled():
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
