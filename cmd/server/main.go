package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karthik1105235/admybrand-dashboard/internal/config"
	"github.com/karthik1105235/admybrand-dashboard/internal/content"
	"github.com/karthik1105235/admybrand-dashboard/internal/generate"
	"github.com/karthik1105235/admybrand-dashboard/internal/httpx"
	"github.com/karthik1105235/admybrand-dashboard/internal/metrics"
	"github.com/karthik1105235/admybrand-dashboard/internal/playback"
	"github.com/karthik1105235/admybrand-dashboard/internal/theme"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	gen := generate.New(nil)
	svc := metrics.NewService(gen)
	themes := theme.New(theme.NewFileStore(cfg.ThemeStatePath))
	demo := playback.NewManager(cfg.DemoDuration)
	catalog := content.NewCatalog()

	themes.Subscribe(func(t theme.Theme) {
		logger.Info("theme changed", slog.String("theme", string(t)))
	})

	r := httpx.NewRouter(logger, svc, themes, demo, catalog)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("err", err.Error()))
			os.Exit(1)
		}
	case <-stop:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		demo.Shutdown()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}
}
