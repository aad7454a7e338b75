package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"ai-website-builder/internal/config"
	"ai-website-builder/internal/generator"
	"ai-website-builder/internal/handler"
	"ai-website-builder/internal/infrastructure/cache"
	"ai-website-builder/internal/infrastructure/database"
	"ai-website-builder/internal/logger"
	"ai-website-builder/internal/metrics"
	"ai-website-builder/internal/middleware"
	"ai-website-builder/internal/repository"
	"ai-website-builder/internal/service"
	"ai-website-builder/internal/validator"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repo   repository.WebsiteRepository
		checks []handler.HealthCheck
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory store; websites are lost on restart")
		repo = repository.NewMemoryWebsiteRepository()
	default:
		pc := poolConfig(cfg)
		if cfg.DBAutoMigrate {
			if err := database.RunMigrations(cfg.MigrationsPath, pc.URL(), database.MigrateUp); err != nil {
				return err
			}
		}

		pool, err := database.NewPostgres(ctx, pc)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()

		repo = repository.NewPostgresWebsiteRepository(pool)
		checks = append(checks, handler.HealthCheck{Name: "database", Check: pool.Ping})
	}

	if cfg.CacheEnabled() {
		client, err := cache.NewRedisClient(ctx, cache.Config{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()

		repo = repository.NewCachedWebsiteRepository(repo, client, cfg.CacheTTL)
		checks = append(checks, handler.HealthCheck{
			Name:  "cache",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	}

	completer, err := generator.NewCompleter(&generator.Settings{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		APIKey:   cfg.LLMAPIKey,
		BaseURL:  cfg.LLMBaseURL,
	})
	if err != nil {
		return fmt.Errorf("create llm completer: %w", err)
	}
	provider := generator.NewProvider(completer,
		generator.WithTimeout(cfg.LLMTimeout),
		generator.WithRateLimit(cfg.LLMRateLimit, cfg.LLMRateBurst),
	)

	websiteService := service.NewWebsiteService(repo, provider, validator.NewValidator())

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      newRouter(websiteService, handler.NewHealthHandler(checks...)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver),
			slog.Bool("cache", cfg.CacheEnabled()),
			slog.String("llm_provider", cfg.LLMProvider),
			slog.String("llm_model", cfg.LLMModel))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
	return nil
}

func newRouter(websiteService service.WebsiteServiceInterface, healthHandler *handler.HealthHandler) *gin.Engine {
	websiteHandler := handler.NewWebsiteHandler(websiteService)
	viewHandler := handler.NewViewHandler(websiteService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/createWebsite", websiteHandler.CreateWebsite)
		api.POST("/generateSuggestedDetails", websiteHandler.SuggestDetails)
		api.POST("/generateContentSection", websiteHandler.GenerateSection)
		api.POST("/updateSectionContent", websiteHandler.UpdateSection)
		api.POST("/publishWebsite", websiteHandler.Publish)
		api.POST("/chatBotMessage", websiteHandler.Chat)
		api.GET("/website/:id", websiteHandler.GetWebsite)
		api.GET("/websites", websiteHandler.ListWebsites)
		api.GET("/sections", websiteHandler.ListSections)
	}

	router.GET("/view/:websiteId", viewHandler.ViewWebsite)

	return router
}
