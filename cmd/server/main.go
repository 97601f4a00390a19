package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "blogicum-service/internal/cache/redis"
	"blogicum-service/internal/config"
	delivery_http "blogicum-service/internal/delivery/http"
	admin_http "blogicum-service/internal/delivery/http/admin"
	comment_http "blogicum-service/internal/delivery/http/comment"
	post_http "blogicum-service/internal/delivery/http/post"
	profile_http "blogicum-service/internal/delivery/http/profile"
	delivery_metrics "blogicum-service/internal/delivery/metrics"
	"blogicum-service/internal/logger"
	prometheus_metrics "blogicum-service/internal/metrics/prometheus"
	category_postgres "blogicum-service/internal/repository/category/postgres"
	comment_postgres "blogicum-service/internal/repository/comment/postgres"
	location_postgres "blogicum-service/internal/repository/location/postgres"
	post_postgres "blogicum-service/internal/repository/post/postgres"
	"blogicum-service/internal/repository/postgres"
	user_postgres "blogicum-service/internal/repository/user/postgres"
	category_service "blogicum-service/internal/service/category"
	comment_service "blogicum-service/internal/service/comment"
	post_service "blogicum-service/internal/service/post"
	profile_service "blogicum-service/internal/service/profile"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postCache := redis_cache.NewPostCache(redisClient, log)
	categoryCache := redis_cache.NewCategoryCache(redisClient, log)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	categoryRepo := category_postgres.NewCategoryRepository(pool, log)
	locationRepo := location_postgres.NewLocationRepository(pool, log)
	commentRepo := comment_postgres.NewCommentRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log)

	basePostService := post_service.NewPostService(
		postRepo,
		categoryRepo,
		locationRepo,
		commentRepo,
		userRepo,
		unitOfWork,
		log,
		metrics,
		cfg.Pagination.PageSize,
	)
	postService := post_service.NewPostServiceCacheDecorator(
		basePostService,
		postCache,
		categoryCache,
		log,
		metrics,
	)

	commentService := comment_service.NewCommentService(commentRepo, postRepo, categoryRepo, log, metrics)
	profileService := profile_service.NewProfileService(userRepo, log)

	baseCategoryService := category_service.NewCategoryService(categoryRepo, locationRepo, unitOfWork, log)
	categoryService := category_service.NewCategoryServiceCacheDecorator(baseCategoryService, categoryCache, log)

	postHTTP := post_http.NewPostHTTPService(postService, commentService, log)
	commentHTTP := comment_http.NewCommentHTTPService(commentService, log)
	profileHTTP := profile_http.NewProfileHTTPService(profileService, postService, log)
	adminHTTP := admin_http.NewAdminHTTPService(categoryService, log)

	router := delivery_http.NewRouter(postHTTP, commentHTTP, profileHTTP, adminHTTP, log, metrics)
	httpServer := delivery_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)

	metricsServer := delivery_metrics.NewServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
