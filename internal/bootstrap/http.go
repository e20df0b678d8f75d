package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	cafeweb "github.com/renoh/cafe-web"
	"github.com/renoh/cafe-web/config"
	httpx "github.com/renoh/cafe-web/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPHandler assembles the full HTTP handler: the page router
// wrapped in recovery and request logging.
// Order: Recover -> Logging -> Router.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templates, static, err := siteAssets(cfg.Config.IsDev)
	if err != nil {
		return nil, err
	}

	router, err := httpx.NewRouter(httpx.RouterServices{
		Cafes:        cfg.Services.API,
		Posts:        cfg.Services.API,
		Users:        cfg.Services.API,
		Auth:         cfg.Services.Auth,
		Templates:    templates,
		Static:       static,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		IsDev:        cfg.Config.IsDev,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	h := httpx.Logging(logger)(router)
	h = httpx.Recover(logger)(h)
	return h, nil
}

// siteAssets returns the template and static filesystems. Dev mode reads
// from disk so edits show up without a rebuild; production uses the
// embedded copies.
func siteAssets(isDev bool) (fs.FS, fs.FS, error) {
	if isDev {
		return os.DirFS("web/templates"), os.DirFS("web/static"), nil
	}

	templates, err := fs.Sub(cafeweb.TemplateFS, "web/templates")
	if err != nil {
		return nil, nil, fmt.Errorf("embedded templates: %w", err)
	}
	static, err := fs.Sub(cafeweb.StaticFS, "web/static")
	if err != nil {
		return nil, nil, fmt.Errorf("embedded static assets: %w", err)
	}
	return templates, static, nil
}

// RunHTTPServer serves the site until the context is cancelled or a
// shutdown signal arrives, then drains in-flight requests.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		logger.InfoContext(ctx, "starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.InfoContext(ctx, "HTTP server stopped")
	return nil
}
