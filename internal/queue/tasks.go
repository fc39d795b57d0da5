package queue

import (
	"encoding/json"
	"time"

	"github.com/jewelhub/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCatalogAudit 目录审计日志任务
	TaskCatalogAudit = constants.TaskCatalogAudit
)

// CatalogAuditPayload 目录审计日志任务载荷
type CatalogAuditPayload struct {
	RequestID  string                 `json:"request_id"`
	Actor      string                 `json:"actor"`
	Action     string                 `json:"action"`
	ShopID     string                 `json:"shop_id"`
	TargetID   string                 `json:"target_id"`
	Detail     map[string]interface{} `json:"detail"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// NewCatalogAuditTask 创建目录审计日志任务
func NewCatalogAuditTask(payload CatalogAuditPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCatalogAudit, body), nil
}

// ParseCatalogAuditPayload 解析目录审计日志任务载荷
func ParseCatalogAuditPayload(task *asynq.Task) (CatalogAuditPayload, error) {
	var payload CatalogAuditPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
