package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"parceldesk/internal/config"
	"parceldesk/internal/database"
	"parceldesk/internal/handler"
	"parceldesk/internal/middleware"
	"parceldesk/internal/pricing"
	"parceldesk/internal/rates"
	"parceldesk/internal/repository"
	"parceldesk/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connectCancel()

	pool, err := database.NewPool(connectCtx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})
	defer rdb.Close()

	if err := rdb.Ping(connectCtx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable at startup, rate cache degraded")
	}

	pkgRepo := repository.NewPackageRepository(pool)
	typeRepo := repository.NewPackageTypeRepository(pool)

	rateCache := rates.NewCache(rdb)
	rateClient := rates.NewClient(cfg.RateAPIURL)
	refresher := rates.NewRefresher(rateClient, rateCache)
	sweeper := pricing.NewSweeper(rateCache, pkgRepo)

	pkgService := service.NewPackageService(pkgRepo, typeRepo)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool, rdb)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)

	pkgHandler := handler.NewPackageHandler(pkgService)
	adminHandler := handler.NewAdminHandler(refresher, sweeper)

	api := router.Group("/api/v1")
	api.Use(middleware.Session())
	{
		api.POST("/packages", pkgHandler.Register)
		api.GET("/packages", pkgHandler.List)
		api.GET("/packages/:id", pkgHandler.Get)
		api.GET("/package-types", pkgHandler.Types)
		api.POST("/tasks/refresh-rate", adminHandler.RefreshRate)
		api.POST("/tasks/recalculate-costs", adminHandler.RecalculateCosts)
	}

	tasks, taskCtx := errgroup.WithContext(ctx)
	tasks.Go(func() error { return refresher.Run(taskCtx) })
	tasks.Go(func() error { return sweeper.Run(taskCtx) })

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := tasks.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("background task failed")
	}

	log.Info().Msg("server exited")
}
