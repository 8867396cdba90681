// Package main API Gateway 服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"aws-architect-api/internal/application/artifact"
	"aws-architect-api/internal/application/interview"
	"aws-architect-api/internal/config"
	"aws-architect-api/internal/infrastructure/llm"
	"aws-architect-api/internal/infrastructure/persistence/postgres"
	redisinfra "aws-architect-api/internal/infrastructure/persistence/redis"
	"aws-architect-api/internal/infrastructure/storage"
	"aws-architect-api/internal/interfaces/http/handler"
	"aws-architect-api/internal/interfaces/http/router"
	"aws-architect-api/internal/workflow/chain"
	"aws-architect-api/pkg/logger"
	"aws-architect-api/pkg/tracer"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting api-gateway",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化追踪
	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		log.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 基础设施客户端
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		logger.Fatal(ctx, "failed to connect postgres", err)
	}
	defer pgClient.Close()

	redisClient, err := redisinfra.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Fatal(ctx, "failed to connect redis", err)
	}
	defer redisClient.Close()

	s3Store, err := storage.NewS3Store(&cfg.Storage.S3)
	if err != nil {
		logger.Fatal(ctx, "failed to init object storage", err)
	}

	// 应用装配
	projectRepo := postgres.NewProjectRecordRepository(pgClient)
	projectCache := redisinfra.NewProjectRecordCache(redisClient)
	rateLimiter := redisinfra.NewRateLimiter(redisClient)

	llmFactory := llm.NewEinoFactory(cfg)
	interviewChain := chain.NewInterviewChain(llmFactory)

	registry := artifact.NewRegistry(nil)
	sink := artifact.NewSink(s3Store, projectRepo)
	pipeline := interview.NewPipeline(interviewChain, registry, sink, &cfg.LLM)

	handlers := router.Handlers{
		Health:  handler.NewHealthHandler(pgClient, redisClient, s3Store),
		Chat:    handler.NewChatHandler(pipeline),
		Project: handler.NewProjectHandler(projectRepo, s3Store, projectCache),
	}

	r := router.New(cfg, handlers, rateLimiter)

	// 创建 HTTP 服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	// 启动服务器
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
