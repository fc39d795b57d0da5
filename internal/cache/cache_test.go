package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/models"

	"github.com/alicebob/miniredis/v2"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("cache should be disabled")
	}
	ctx := context.Background()
	version, err := CurrentCatalogVersion(ctx, "1")
	if err != nil || version != (CatalogVersion{}) {
		t.Fatalf("disabled version should be zero: %+v err=%v", version, err)
	}
	if err := SetResolvedCatalog(ctx, "1", version, []string{"a"}, time.Minute); err != nil {
		t.Fatalf("set should be noop: %v", err)
	}
	var dest []string
	hit, err := GetResolvedCatalog(ctx, "1", version, &dest)
	if err != nil || hit {
		t.Fatalf("get should miss: hit=%v err=%v", hit, err)
	}
	if err := InvalidateAllCatalogs(ctx); err != nil {
		t.Fatalf("invalidate should be noop: %v", err)
	}
}

func TestBuildKeysAndState(t *testing.T) {
	redisPrefix = "jh"
	if got := buildKey(resolvedCatalogKey(CatalogVersion{Generation: 3, Shop: 2}, "1")); got != "jh:catalog:resolved:3:2:1" {
		t.Fatalf("unexpected catalog key: %s", got)
	}
	state := BuildCredentialAuthState(&models.Credential{ID: "jeweler-1", Username: "diamond_palace", Role: "jeweler_admin", JewelerShopID: "1", TokenVersion: 2})
	if state.CredentialID != "jeweler-1" || state.JewelerShopID != "1" || state.TokenVersion != 2 {
		t.Fatalf("unexpected auth state: %+v", state)
	}
	if BuildCredentialAuthState(nil) != nil {
		t.Fatalf("nil credential should produce nil state")
	}
}

func enableTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port failed: %v", err)
	}
	if err := InitRedis(&config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port, Prefix: "jh"}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })
}

func TestResolvedCatalogVersions(t *testing.T) {
	enableTestRedis(t)
	ctx := context.Background()

	v0, err := CurrentCatalogVersion(ctx, "1")
	if err != nil {
		t.Fatalf("read version failed: %v", err)
	}
	if err := SetResolvedCatalog(ctx, "1", v0, []string{"ring"}, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	var dest []string
	if hit, err := GetResolvedCatalog(ctx, "1", v0, &dest); err != nil || !hit || len(dest) != 1 {
		t.Fatalf("expected hit: hit=%v err=%v dest=%v", hit, err, dest)
	}

	if err := InvalidateShopCatalog(ctx, "1"); err != nil {
		t.Fatalf("invalidate shop failed: %v", err)
	}
	v1, _ := CurrentCatalogVersion(ctx, "1")
	if v1.Shop != v0.Shop+1 || v1.Generation != v0.Generation {
		t.Fatalf("shop version should advance: %+v -> %+v", v0, v1)
	}
	if hit, _ := GetResolvedCatalog(ctx, "1", v1, &dest); hit {
		t.Fatalf("shop invalidation should miss")
	}
	other, _ := CurrentCatalogVersion(ctx, "2")
	if other.Shop != 0 {
		t.Fatalf("other shop version must not move: %+v", other)
	}

	if err := InvalidateAllCatalogs(ctx); err != nil {
		t.Fatalf("invalidate all failed: %v", err)
	}
	v2, _ := CurrentCatalogVersion(ctx, "1")
	if v2.Generation != v1.Generation+1 {
		t.Fatalf("generation should advance: %+v -> %+v", v1, v2)
	}
}

func TestCredentialAuthStateRoundTrip(t *testing.T) {
	enableTestRedis(t)
	ctx := context.Background()

	state := BuildCredentialAuthState(&models.Credential{ID: "jeweler-1", Username: "diamond_palace", Role: "jeweler_admin", JewelerShopID: "1", TokenVersion: 3})
	if err := SetCredentialAuthState(ctx, state); err != nil {
		t.Fatalf("set auth state failed: %v", err)
	}
	got, hit, err := GetCredentialAuthState(ctx, "jeweler-1")
	if err != nil || !hit || got.TokenVersion != 3 || got.JewelerShopID != "1" {
		t.Fatalf("unexpected auth state: %+v hit=%v err=%v", got, hit, err)
	}
	if err := DelCredentialAuthState(ctx, "jeweler-1"); err != nil {
		t.Fatalf("delete auth state failed: %v", err)
	}
	if _, hit, _ := GetCredentialAuthState(ctx, "jeweler-1"); hit {
		t.Fatalf("auth state should be gone after delete")
	}
}
