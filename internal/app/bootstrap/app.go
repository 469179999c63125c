package bootstrap

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ankitraj/portfolio/internal/api/router"
	"github.com/ankitraj/portfolio/internal/config"
	"github.com/ankitraj/portfolio/internal/contact"
	"github.com/ankitraj/portfolio/internal/observability/metrics"
	"github.com/ankitraj/portfolio/internal/site"
	"github.com/ankitraj/portfolio/pkg/logging"
	"github.com/ankitraj/portfolio/web"
)

// Options overrides dependencies when building the HTTP handler.
type Options struct {
	NewSES SESClientFunc
	// Public replaces the asset tree; nil uses PUBLIC_DIR or the embedded assets.
	Public fs.FS
}

// BuildHandler wires the full HTTP surface shared by the server and the
// Lambda entry point.
func BuildHandler(ctx context.Context, cfg *config.Config, logger *logging.Logger, opts Options) (http.Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	sender, err := BuildContactSender(ctx, cfg, logger, opts.NewSES)
	if err != nil {
		return nil, err
	}

	routerCfg := &router.Config{
		Logger:             logger,
		Site:               site.NewHandler(publicFS(cfg, opts, logger), cfg.IndexFile, logger),
		Health:             site.Health(nil),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	handlerOpts := []contact.HandlerOption{contact.WithDispatchTimeout(cfg.DispatchTimeout)}
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		handlerOpts = append(handlerOpts, contact.WithMetrics(metrics.NewContactMetrics(reg)))
		routerCfg.HTTPMetrics = metrics.NewHTTPMetrics(reg)
		routerCfg.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}
	routerCfg.ContactHandler = contact.NewHandler(sender, logger, handlerOpts...)

	return router.New(routerCfg), nil
}

func publicFS(cfg *config.Config, opts Options, logger *logging.Logger) fs.FS {
	if opts.Public != nil {
		return opts.Public
	}
	if dir := strings.TrimSpace(cfg.PublicDir); dir != "" {
		logger.Info("serving public assets from disk", "dir", dir)
		return os.DirFS(dir)
	}
	return web.Public()
}
