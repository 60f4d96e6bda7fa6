package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskgo/task-service/api/handler"
	"github.com/taskgo/task-service/internal/config"
	"github.com/taskgo/task-service/internal/infrastructure/monitor"
	pgInfra "github.com/taskgo/task-service/internal/infrastructure/postgres"
	redisInfra "github.com/taskgo/task-service/internal/infrastructure/redis"
	"github.com/taskgo/task-service/internal/middleware"
	"github.com/taskgo/task-service/internal/router"
	"github.com/taskgo/task-service/internal/services/lifecycle"
	"github.com/taskgo/task-service/pkg/httpcontext"
	"github.com/taskgo/task-service/pkg/logger"
	"github.com/taskgo/task-service/repository"
	"github.com/taskgo/task-service/repository/inmemory"
	"github.com/taskgo/task-service/repository/postgres"
	redisRepo "github.com/taskgo/task-service/repository/redis"
	taskUC "github.com/taskgo/task-service/usecase/task"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	var (
		pool     *pgxpool.Pool
		taskRepo repository.TaskRepository
	)

	switch cfg.Repository.Type {
	case "inmemory":
		zapLogger.Warn("using in-memory repository, data will not survive restarts")
		taskRepo = inmemory.NewTaskRepository()
	default:
		// the service must not serve traffic against an unreachable or
		// uninitialized database
		pool, err = pgInfra.Bootstrap(appCtx, cfg, zapLogger)
		if err != nil {
			zapLogger.Fatal("database bootstrap failed", zap.Error(err))
		}
		manager.Register("postgres", func(ctx context.Context) error {
			pool.Close()
			return nil
		})
		taskRepo = postgres.NewTaskRepository(pool)
	}

	var redisClient *redislib.Client
	if cfg.Redis.URL != "" {
		redisClient, err = redisInfra.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("redis connection failed", zap.Error(err))
		}
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
		taskRepo = redisRepo.NewTaskCache(taskRepo, redisClient, cfg.Redis.CacheTTL, zapLogger)
	}

	mon := monitor.New(pool, redisClient, 0, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	taskUseCase := taskUC.New(taskRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, cfg.ServiceName, ctxAdapter, zapLogger),
	}

	identity := middleware.Identity(zapLogger)
	r := router.New(handlers, identity)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.ServiceName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
