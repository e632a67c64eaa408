package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/contact-scout/internal/auth"
	"github.com/octobees/contact-scout/internal/config"
	"github.com/octobees/contact-scout/internal/database"
	"github.com/octobees/contact-scout/internal/fetcher"
	"github.com/octobees/contact-scout/internal/handler"
	middlewarepkg "github.com/octobees/contact-scout/internal/middleware"
	"github.com/octobees/contact-scout/internal/repository"
	"github.com/octobees/contact-scout/internal/router"
	"github.com/octobees/contact-scout/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	recordsRepo := repository.NewPGXRecordsRepository(pool)

	pageFetcher := fetcher.NewHTTPFetcher(&http.Client{Timeout: cfg.FetchTimeout})

	authService := service.NewAuthService(usersRepo, jwtManager)
	analyzeService := service.NewAnalyzeService(pageFetcher, recordsRepo, cfg.DefaultRegion)
	recordsService := service.NewRecordsService(recordsRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Analyze: handler.NewAnalyzeHandler(analyzeService),
		Records: handler.NewRecordsHandler(recordsService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
