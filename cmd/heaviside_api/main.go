// Package main serves the step function, its sweep and the temperature
// converter over HTTP.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/heaviside/internal/api/router"
	"github.com/DjordjeVuckovic/heaviside/internal/api/server"
	"github.com/DjordjeVuckovic/heaviside/internal/scenario"
	"github.com/DjordjeVuckovic/heaviside/pkg/logging"
	pkgserver "github.com/DjordjeVuckovic/heaviside/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	logging.Init("heaviside_api")

	sCfg, err := server.LoadConfig(os.Getenv("ENV"))
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	sc, err := scenario.Load(sCfg.ScenarioPath)
	if err != nil {
		slog.Error("Failed to load scenario", "path", sCfg.ScenarioPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Scenario loaded", "name", sc.Name)

	s := server.New(sCfg, pkgserver.HealthFunc(func(ctx context.Context) bool {
		return ctx.Err() == nil
	})).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Heaviside API is running")
	})

	router.NewHeavisideRouter(s.Echo, sc).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Server stopped")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
