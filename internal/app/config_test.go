package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MetricsAddr != ":9090" {
		t.Errorf("expected MetricsAddr :9090, got %s", cfg.MetricsAddr)
	}
	if len(cfg.SeedNames) == 0 {
		t.Error("expected non-empty default seed names")
	}
	if cfg.MaxOrdersPerCustomer != 100 {
		t.Errorf("expected MaxOrdersPerCustomer 100, got %d", cfg.MaxOrdersPerCustomer)
	}
	if cfg.EventInterval != time.Second {
		t.Errorf("expected EventInterval 1s, got %s", cfg.EventInterval)
	}
	if cfg.EventCount != 10 {
		t.Errorf("expected EventCount 10, got %d", cfg.EventCount)
	}
	if cfg.RandSeed != 0 {
		t.Errorf("expected RandSeed 0, got %d", cfg.RandSeed)
	}
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("CRM_METRICS_ADDR", ":9999")
	t.Setenv("CRM_SEED_NAMES", "Vishnu, Shiv ,Venkat")
	t.Setenv("CRM_MAX_ORDERS_PER_CUSTOMER", "7")
	t.Setenv("CRM_EVENT_INTERVAL", "250ms")
	t.Setenv("CRM_EVENT_COUNT", "5")
	t.Setenv("CRM_RAND_SEED", "42")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.MetricsAddr != ":9999" {
		t.Errorf("expected MetricsAddr :9999, got %s", cfg.MetricsAddr)
	}
	if len(cfg.SeedNames) != 3 || cfg.SeedNames[1] != "Shiv" {
		t.Errorf("unexpected seed names: %v", cfg.SeedNames)
	}
	if cfg.MaxOrdersPerCustomer != 7 {
		t.Errorf("expected MaxOrdersPerCustomer 7, got %d", cfg.MaxOrdersPerCustomer)
	}
	if cfg.EventInterval != 250*time.Millisecond {
		t.Errorf("expected EventInterval 250ms, got %s", cfg.EventInterval)
	}
	if cfg.EventCount != 5 {
		t.Errorf("expected EventCount 5, got %d", cfg.EventCount)
	}
	if cfg.RandSeed != 42 {
		t.Errorf("expected RandSeed 42, got %d", cfg.RandSeed)
	}
}

func TestLoadConfigFromEnv_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"CRM_MAX_ORDERS_PER_CUSTOMER": "zero",
		"CRM_EVENT_INTERVAL":          "-1s",
		"CRM_EVENT_COUNT":             "-5",
		"CRM_RAND_SEED":               "not-a-number",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfigFromEnv(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadConfigFromEnv_SeedFile(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "seed.yaml")
	content := []byte("names:\n  - Durga\n  - Lakshmi\nmax_orders_per_customer: 3\n")
	if err := os.WriteFile(seedFile, content, 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	t.Setenv("CRM_SEED_FILE", seedFile)

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(cfg.SeedNames) != 2 || cfg.SeedNames[0] != "Durga" {
		t.Errorf("unexpected seed names: %v", cfg.SeedNames)
	}
	if cfg.MaxOrdersPerCustomer != 3 {
		t.Errorf("expected MaxOrdersPerCustomer 3, got %d", cfg.MaxOrdersPerCustomer)
	}
}

func TestLoadConfigFromEnv_SeedFileMissing(t *testing.T) {
	t.Setenv("CRM_SEED_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestLoadConfigFromEnv_SeedFileInvalidYAML(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(seedFile, []byte("names: [unbalanced"), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	t.Setenv("CRM_SEED_FILE", seedFile)

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
