package worker

import (
	"context"
	"strings"

	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/provider"
	"github.com/jewelhub/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCatalogAudit, c.handleCatalogAudit)
}

func (c *Consumer) handleCatalogAudit(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_catalog_audit_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseCatalogAuditPayload(task)
	if err != nil {
		// 载荷损坏无法重试成功，直接丢弃
		logger.Warnw("worker_catalog_audit_unmarshal_failed", "error", err)
		return nil
	}
	if strings.TrimSpace(payload.Action) == "" {
		logger.Debugw("worker_catalog_audit_skip_invalid_payload", "request_id", payload.RequestID)
		return nil
	}
	if c.AuditService == nil {
		logger.Warnw("worker_catalog_audit_skip_service_nil", "action", payload.Action)
		return nil
	}
	if err := c.AuditService.Persist(payload); err != nil {
		logger.Warnw("worker_catalog_audit_persist_failed",
			"action", payload.Action,
			"request_id", payload.RequestID,
			"shop_id", payload.ShopID,
			"error", err,
		)
		return err
	}
	return nil
}
