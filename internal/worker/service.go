package worker

import (
	"context"
	"errors"

	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 目录审计队列消费服务
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 创建异步队列服务；队列未启用时返回 nil
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		server: server,
		mux:    mux,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 启动消费并阻塞到 ctx 结束；信号由 Runner 统一处理
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// Stop 等待进行中的审计任务完成后退出
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}
