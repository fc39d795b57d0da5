package app

import (
	"errors"

	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/provider"
	"github.com/jewelhub/internal/router"
	"github.com/jewelhub/internal/worker"

	"go.uber.org/zap"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, *provider.Container, error) {
	if cfg == nil {
		return nil, nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)
	runner, err := buildRunner(cfg, mode, container)
	if err != nil {
		return nil, container, err
	}
	return runner, container, nil
}

// releaseResources 关闭容器持有的外部连接
func releaseResources(container *provider.Container, log *zap.SugaredLogger) {
	if container == nil {
		return
	}
	if container.QueueClient != nil {
		if err := container.QueueClient.Close(); err != nil {
			log.Warnw("queue_client_close_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		log.Warnw("redis_close_failed", "error", err)
	}
}

func buildRunner(cfg *config.Config, mode string, container *provider.Container) (*Runner, error) {
	var services []Service

	// API 进程负责初始加载与 HTTP
	if mode == ModeAll || mode == ModeAPI {
		services = append(services, NewSeedService(container.LoaderService, cfg.Catalog.SeedOnStart))
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		services = append(services, NewHTTPService(addr, engine))
	}

	// 审计队列消费者
	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, err
		}
		if workerService != nil {
			services = append(services, workerService)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and queue config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, container, err := BuildRunner(opts.Config, opts.Mode)
	defer releaseResources(container, opts.Logger)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
