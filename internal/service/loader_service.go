package service

import (
	"context"
	"sync"
	"time"

	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"gorm.io/gorm"
)

// AppState 初始加载状态
type AppState struct {
	IsLoading     bool   `json:"is_loading"`
	IsInitialized bool   `json:"is_initialized"`
	Error         string `json:"error,omitempty"`
}

// LoaderRepositories 初始加载涉及的仓库
type LoaderRepositories struct {
	Products       repository.ProductRepository
	Shops          repository.ShopRepository
	Settings       repository.SettingsRepository
	TenantProducts repository.TenantProductRepository
	Visibility     repository.VisibilityRepository
	Credentials    repository.CredentialRepository
	Dashboard      repository.DashboardRepository
}

// LoaderService 初始数据加载服务：模拟延迟后在单个事务内写入全部数据
type LoaderService struct {
	repos       LoaderRepositories
	authService *AuthService
	delay       time.Duration
	snapshot    func() *SeedSnapshot

	loadMu sync.Mutex
	mu     sync.RWMutex
	state  AppState
}

// NewLoaderService 创建初始加载服务
func NewLoaderService(repos LoaderRepositories, authService *AuthService, delay time.Duration) *LoaderService {
	if delay < 0 {
		delay = 0
	}
	return &LoaderService{
		repos:       repos,
		authService: authService,
		delay:       delay,
		snapshot:    DefaultSeedSnapshot,
		state:       AppState{IsLoading: true},
	}
}

// State 返回当前加载状态
func (s *LoaderService) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready 加载完成返回 nil，否则返回 ErrNotInitialized 或 ErrLoadFailed
func (s *LoaderService) Ready() error {
	state := s.State()
	switch {
	case state.IsInitialized:
		return nil
	case state.Error != "":
		return ErrLoadFailed
	default:
		return ErrNotInitialized
	}
}

// MarkInitialized 跳过种子加载直接标记就绪（使用既有数据库时）
func (s *LoaderService) MarkInitialized() {
	s.setState(AppState{IsInitialized: true})
}

// Load 执行初始加载；失败时回滚并保留错误，不重试
func (s *LoaderService) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.State().IsInitialized {
		return nil
	}
	s.setState(AppState{IsLoading: true})
	logger.Infow("seed_load_started", "delay_ms", s.delay.Milliseconds())

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return s.fail(ctx.Err())
		case <-timer.C:
		}
	}

	seeded := false
	err := s.repos.Dashboard.Transaction(func(tx *gorm.DB) error {
		counter, err := s.repos.Dashboard.WithTx(tx).GetCounter()
		if err != nil {
			return err
		}
		if counter != nil {
			return nil
		}
		seeded = true
		return s.insertSnapshot(tx, s.snapshot())
	})
	if err != nil {
		return s.fail(err)
	}
	s.setState(AppState{IsInitialized: true})
	logger.Infow("seed_load_completed", "seeded", seeded)
	return nil
}

func (s *LoaderService) insertSnapshot(tx *gorm.DB, snapshot *SeedSnapshot) error {
	if snapshot == nil {
		snapshot = DefaultSeedSnapshot()
	}
	products := s.repos.Products.WithTx(tx)
	for i := range snapshot.Products {
		if err := products.Create(&snapshot.Products[i]); err != nil {
			return err
		}
	}
	shops := s.repos.Shops.WithTx(tx)
	for i := range snapshot.Shops {
		if err := shops.Create(&snapshot.Shops[i]); err != nil {
			return err
		}
	}
	settings := s.repos.Settings.WithTx(tx)
	for i := range snapshot.Settings {
		if err := settings.Upsert(&snapshot.Settings[i]); err != nil {
			return err
		}
	}
	tenantProducts := s.repos.TenantProducts.WithTx(tx)
	for i := range snapshot.TenantProducts {
		if err := tenantProducts.Create(&snapshot.TenantProducts[i]); err != nil {
			return err
		}
	}
	now := time.Now()
	for i := range snapshot.Visibility {
		snapshot.Visibility[i].UpdatedAt = now
	}
	if err := s.repos.Visibility.WithTx(tx).CreateBatch(snapshot.Visibility); err != nil {
		return err
	}
	credentials := s.repos.Credentials.WithTx(tx)
	for _, seed := range snapshot.Credentials {
		hash, err := s.authService.HashPassword(seed.Password)
		if err != nil {
			return err
		}
		if err := credentials.Create(&models.Credential{
			ID:            seed.ID,
			Username:      seed.Username,
			PasswordHash:  hash,
			Role:          seed.Role,
			JewelerShopID: seed.JewelerShopID,
		}); err != nil {
			return err
		}
	}
	counter := snapshot.Counter
	return s.repos.Dashboard.WithTx(tx).SaveCounter(&counter)
}

func (s *LoaderService) fail(err error) error {
	s.setState(AppState{Error: err.Error()})
	logger.Errorw("seed_load_failed", "error", err)
	return err
}

func (s *LoaderService) setState(state AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
