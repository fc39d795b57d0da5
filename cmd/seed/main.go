package main

import (
	"context"
	"time"

	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/provider"
)

// 一次性写入演示数据：默认商品、两家珠宝店及其凭据
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 种子命令无需人为延迟
	cfg.Catalog.SeedDelayMS = 0
	container, err := provider.NewContainerWithDB(cfg, models.DB)
	if err != nil {
		stdLog.Fatalf("Failed to build container: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := container.LoaderService.Load(ctx); err != nil {
		stdLog.Fatalf("Seed failed: %v", err)
	}

	state := container.LoaderService.State()
	stdLog.Printf("Seed finished: initialized=%v", state.IsInitialized)
}
