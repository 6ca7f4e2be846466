package app

import (
	"context"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// platform is the infrastructure shared by the api, worker and consumer:
// the central registry database and the router over tenant databases.
type platform struct {
	central *gorm.DB
	tenants tenant.Service
	router  *tenant.Router
}

func newPlatform(cfg config.Config, logger *zap.Logger) (*platform, error) {
	central, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.CentralDBName, 5)
	if err != nil {
		return nil, err
	}
	if err := central.AutoMigrate(&tenant.Tenant{}); err != nil {
		return nil, err
	}
	logger.Info("central database ready", zap.String("db", cfg.CentralDBName))

	registry := tenant.NewRepository(central)
	router := tenant.NewRouter(
		registry,
		func(ctx context.Context, dbName string) (*gorm.DB, error) {
			return connection.OpenGORM(ctx, cfg.DB, dbName)
		},
		tenant.MigrateModels(TenantModels()...),
		tenant.RouterConfig{
			Prefix:     cfg.TenantDBPrefix,
			CacheSize:  cfg.TenantCacheSize,
			Strict:     cfg.TenantStrictResolve,
			EvictGrace: cfg.TenantEvictGrace,
		},
		logger,
	)

	return &platform{
		central: central,
		tenants: tenant.NewService(registry, router, tenant.NewPostgresProvisioner(central), logger),
		router:  router,
	}, nil
}

// Close releases every tenant pool and the central connection.
func (p *platform) Close() {
	p.router.ClearCache()
	if sqlDB, err := p.central.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// BuildApp wires the HTTP api onto router. The returned func closes the
// database pools and must run after the server stopped.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	p, err := newPlatform(cfg, logger)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		p.Close()
		return nil, err
	}
	logger.Info("redis connection established", zap.String("addr", cfg.RedisAddr))

	if err := registerModules(router, cfg, p, rdb, logger); err != nil {
		_ = rdb.Close()
		p.Close()
		return nil, err
	}

	return func() {
		_ = rdb.Close()
		p.Close()
	}, nil
}
