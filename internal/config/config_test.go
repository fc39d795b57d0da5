package config

import "testing"

func TestDefaultUsesInMemoryCatalog(t *testing.T) {
	cfg := Default()
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("driver want sqlite got %s", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "file::memory:?cache=shared" {
		t.Fatalf("dsn want in-memory got %s", cfg.Database.DSN)
	}
	if cfg.Catalog.SeedDelayMS != 800 {
		t.Fatalf("seed delay want 800 got %d", cfg.Catalog.SeedDelayMS)
	}
	if !cfg.Catalog.SeedOnStart {
		t.Fatalf("seed on start should default to true")
	}
	if cfg.Security.EnforceAdminAuthz {
		t.Fatalf("admin authz should be opt-in")
	}
	if cfg.Queue.Queues["audit"] != 5 {
		t.Fatalf("audit queue weight want 5 got %d", cfg.Queue.Queues["audit"])
	}
}

func TestLogConfigToLoggerOptions(t *testing.T) {
	cfg := LogConfig{Dir: "/tmp/logs", Filename: "jh.log", MaxSizeMB: 5, MaxBackups: 2, MaxAgeDays: 3, Compress: true}
	opts := cfg.ToLoggerOptions()
	if opts.Dir != "/tmp/logs" || opts.Filename != "jh.log" {
		t.Fatalf("unexpected path options: %+v", opts)
	}
	if opts.MaxSizeMB != 5 || opts.MaxBackups != 2 || opts.MaxAgeDays != 3 || !opts.Compress {
		t.Fatalf("unexpected rotation options: %+v", opts)
	}
}
