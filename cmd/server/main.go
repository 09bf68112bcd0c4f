package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"reqwise.app/intake/common/id"
	"reqwise.app/intake/common/llm"
	"reqwise.app/intake/common/logger"
	"reqwise.app/intake/common/otel"
	"reqwise.app/intake/core/config"
	"reqwise.app/intake/core/db"
	"reqwise.app/intake/internal/http/middleware"
	httprouter "reqwise.app/intake/internal/http/router"
	"reqwise.app/intake/internal/interview"
	"reqwise.app/intake/internal/service"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "intake starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	gateway, err := buildGateway(cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build llm gateway", "error", err)
		os.Exit(1)
	}

	services := service.NewServices(database,
		interview.NewDriver(gateway),
		interview.NewExtractor(gateway))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// buildGateway wires the primary and secondary backends in fallback order.
// Backends with missing credentials are still wired: their attempts fail
// immediately and the gateway falls through.
func buildGateway(cfg config.Config) (*llm.Gateway, error) {
	primary, err := llm.NewProvider(llm.Config{
		Provider: cfg.PrimaryLLM.Provider,
		APIKey:   cfg.PrimaryLLM.APIKey,
		BaseURL:  cfg.PrimaryLLM.BaseURL,
		Model:    cfg.PrimaryLLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("primary backend: %w", err)
	}

	secondary, err := llm.NewProvider(llm.Config{
		Provider: cfg.SecondaryLLM.Provider,
		APIKey:   cfg.SecondaryLLM.APIKey,
		BaseURL:  cfg.SecondaryLLM.BaseURL,
		Model:    cfg.SecondaryLLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("secondary backend: %w", err)
	}

	timeout := time.Duration(cfg.LLMAttemptTimeout) * time.Second
	return llm.NewGateway(timeout, primary, secondary), nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		IsProduction: cfg.IsProduction(),
	})

	return router
}

const banner = `
██╗███╗   ██╗████████╗ █████╗ ██╗  ██╗███████╗
██║████╗  ██║╚══██╔══╝██╔══██╗██║ ██╔╝██╔════╝
██║██╔██╗ ██║   ██║   ███████║█████╔╝ █████╗
██║██║╚██╗██║   ██║   ██╔══██║██╔═██╗ ██╔══╝
██║██║ ╚████║   ██║   ██║  ██║██║  ██╗███████╗
╚═╝╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝
`
