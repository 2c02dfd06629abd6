package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Akungapaul/apexheadlines-frontend/config"
	"github.com/Akungapaul/apexheadlines-frontend/internal/cache"
	"github.com/Akungapaul/apexheadlines-frontend/internal/news"
	"github.com/Akungapaul/apexheadlines-frontend/internal/newsletter"
	"github.com/Akungapaul/apexheadlines-frontend/internal/rest"
	"github.com/Akungapaul/apexheadlines-frontend/internal/wordpress"
)

type App struct {
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config

	redis *cache.Redis
}

// New wires the service together: optional Redis cache, WordPress
// gateway, content service, fallback dataset, REST edge. An unreachable
// Redis downgrades to uncached operation instead of failing startup; the
// cache is advisory.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	a := &App{
		Logger: logger,
		Config: cfg,
	}

	var wpCache wordpress.Cache
	if cfg.Redis.Enabled {
		r := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err := r.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, running without response cache", "error", err)
			_ = r.Close()
		} else {
			a.redis = r
			wpCache = r
		}
	}

	wp := wordpress.NewClient(wordpress.Config{
		BaseURL:  cfg.WordPress.BaseURL,
		Timeout:  cfg.WordPress.Timeout.Duration,
		CacheTTL: cfg.WordPress.CacheTTL.Duration,
	}, wpCache, logger)

	handler := rest.NewHandler(
		news.NewManager(wp),
		news.NewFallback(),
		newsletter.NewClient(cfg.Newsletter.URL, cfg.Newsletter.Timeout.Duration),
		logger,
	)

	a.Echo = handler.RegisterRoutes()
	return a
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		err = nil
	}

	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}
