package queue

import (
	"context"
	"testing"

	"github.com/jewelhub/internal/config"
)

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueCatalogAudit(context.Background(), CatalogAuditPayload{Action: "product.create"}); err != nil {
		t.Fatalf("disabled enqueue should be noop: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestCatalogAuditTaskRoundTrip(t *testing.T) {
	task, err := NewCatalogAuditTask(CatalogAuditPayload{
		Actor:    "admin",
		Action:   "visibility.toggle",
		ShopID:   "1",
		TargetID: "4",
		Detail:   map[string]interface{}{"is_visible": true},
	})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskCatalogAudit {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	payload, err := ParseCatalogAuditPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if payload.ShopID != "1" || payload.TargetID != "4" || payload.Detail["is_visible"] != true {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("unexpected addr: %s", opt.Addr)
	}
	if cfg.Concurrency != 10 || cfg.Queues[AuditQueue] != 1 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}
