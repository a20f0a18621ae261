package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/mock-market-data/internal/app"
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
)

func main() {
	app.Main("server", func(cfg *config.Config) error {
		if cfg.App.Environment != "development" {
			gin.SetMode(gin.ReleaseMode)
		}
		return nil
	}, serve)
}

func serve(ctx context.Context, a *app.App) error {
	cfg := a.Config.HTTP

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: a.Bootstrap.REST.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.Logger.InfoContext(ctx, "http server listening", logger.NewField("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- errors.NewConnectivityFault("http server failed", err)
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	a.Logger.InfoContext(ctx, "shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.NewUnclassifiedFault("http server shutdown failed", err)
	}

	a.Logger.InfoContext(ctx, "http server stopped")
	return nil
}
