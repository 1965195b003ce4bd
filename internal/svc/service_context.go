package svc

import (
	"context"
	"time"

	"noteshare/config"
	"noteshare/internal/infra/cache"
	"noteshare/internal/infra/db"
	"noteshare/internal/infra/storage"
	"noteshare/internal/middleware"
	"noteshare/internal/notifier"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config   *config.Config
	DB       *gorm.DB
	Cache    *cache.RedisCache
	Storage  storage.ObjectStore
	Notifier notifier.Notifier

	tracerProvider *trace.TracerProvider
}

// NewServiceContext 这里是所有初始化的总入口
func NewServiceContext(cfg *config.Config) *ServiceContext {
	dbConn := db.InitMySQL(cfg)

	if err := db.Migrate(dbConn); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	rdb, err := cache.New(cfg)
	if err != nil {
		// Redis 只承担登出黑名单，挂了可以继续跑
		zap.L().Warn("Redis connection failed, continuing without Redis", zap.Error(err))
		rdb = nil
	} else {
		zap.L().Info("Redis connected successfully")
	}

	minioSvc, err := storage.NewFileStorage(
		cfg.MinioEndpoint,
		cfg.MinioPublicURL,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioBucket,
	)
	if err != nil {
		panic("failed to connect object storage: " + err.Error())
	}

	tp, err := middleware.InitTracer("noteshare-api", cfg.JaegerEndpoint)
	if err != nil {
		zap.L().Fatal("failed to init tracer", zap.Error(err))
	}

	return &ServiceContext{
		Config:         cfg,
		DB:             dbConn,
		Cache:          rdb,
		Storage:        minioSvc,
		Notifier:       notifier.New(dbConn),
		tracerProvider: tp,
	}
}

func (s *ServiceContext) Close() {
	if s.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.tracerProvider.Shutdown(ctx); err != nil {
			zap.L().Error("Tracer shutdown error", zap.Error(err))
		}
	}
}
