package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-scout/internal/auth"
	"github.com/octobees/contact-scout/internal/config"
	"github.com/octobees/contact-scout/internal/handler"
	middlewarepkg "github.com/octobees/contact-scout/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Analyze *handler.AnalyzeHandler
	Records *handler.RecordsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/analyze", handlers.Analyze.Analyze, middlewarepkg.AnalyzeRateLimiter(cfg.RateLimitAnalyze))
	secured.GET("/records", handlers.Records.List)
	secured.GET("/records/:id", handlers.Records.Get)

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/records/export", handlers.Records.ExportCSV)
}
