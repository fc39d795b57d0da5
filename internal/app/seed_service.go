package app

import (
	"context"

	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/service"
)

// SeedService 启动时加载初始目录数据
// 加载失败不会退出进程：状态保留错误信息，目录接口持续返回 503。
type SeedService struct {
	loader *service.LoaderService
	seed   bool
}

// NewSeedService 创建初始加载服务；seed=false 时直接标记为已就绪
func NewSeedService(loader *service.LoaderService, seed bool) *SeedService {
	return &SeedService{loader: loader, seed: seed}
}

// Name 服务名称
func (s *SeedService) Name() string {
	return "seed"
}

// Start 执行一次加载后阻塞到退出
func (s *SeedService) Start(ctx context.Context) error {
	if s == nil || s.loader == nil {
		<-ctx.Done()
		return nil
	}
	if !s.seed {
		s.loader.MarkInitialized()
		logger.Infow("seed_skipped")
	} else if err := s.loader.Load(ctx); err != nil {
		logger.Errorw("seed_load_failed", "error", err)
	}
	<-ctx.Done()
	return nil
}

// Stop 无需清理
func (s *SeedService) Stop(ctx context.Context) error {
	return nil
}
