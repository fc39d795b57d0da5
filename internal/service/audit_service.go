package service

import (
	"context"
	"strings"
	"time"

	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/queue"
	"github.com/jewelhub/internal/repository"
)

// AuditEntry 目录变更审计记录
type AuditEntry struct {
	RequestID string
	Actor     string
	Action    string
	ShopID    string
	TargetID  string
	Detail    map[string]interface{}
}

// AuditService 目录审计服务：队列可用时异步落库，否则同步写入
type AuditService struct {
	repo        repository.AuditLogRepository
	queueClient *queue.Client
}

// NewAuditService 创建审计服务
func NewAuditService(repo repository.AuditLogRepository, queueClient *queue.Client) *AuditService {
	return &AuditService{repo: repo, queueClient: queueClient}
}

// Record 记录一次变更，失败只记日志不影响主流程
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) {
	if s == nil || strings.TrimSpace(entry.Action) == "" {
		return
	}
	payload := queue.CatalogAuditPayload{
		RequestID:  entry.RequestID,
		Actor:      entry.Actor,
		Action:     entry.Action,
		ShopID:     entry.ShopID,
		TargetID:   entry.TargetID,
		Detail:     entry.Detail,
		OccurredAt: time.Now(),
	}
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueCatalogAudit(ctx, payload)
		if err == nil {
			return
		}
		logger.Warnw("catalog_audit_enqueue_failed",
			"action", entry.Action,
			"request_id", entry.RequestID,
			"error", err,
		)
	}
	if err := s.Persist(payload); err != nil {
		logger.Errorw("catalog_audit_persist_failed",
			"action", entry.Action,
			"request_id", entry.RequestID,
			"error", err,
		)
	}
}

// Persist 写入审计日志（worker 与同步路径共用）
func (s *AuditService) Persist(payload queue.CatalogAuditPayload) error {
	createdAt := payload.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return s.repo.Create(&models.CatalogAuditLog{
		RequestID: payload.RequestID,
		Actor:     payload.Actor,
		Action:    payload.Action,
		ShopID:    payload.ShopID,
		TargetID:  payload.TargetID,
		Detail:    models.JSON(payload.Detail),
		CreatedAt: createdAt,
	})
}

// List 分页查询审计日志
func (s *AuditService) List(filter repository.AuditLogListFilter) ([]models.CatalogAuditLog, int64, error) {
	return s.repo.List(filter)
}
