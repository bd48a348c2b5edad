package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SD_HTTP_ADDR", ":9000")
	t.Setenv("SD_DEV_MODE", "false")
	t.Setenv("SD_MISTRAL_API_KEY", "sk-test")
	t.Setenv("SD_LLM_MODEL", "mistral-small-latest")
	t.Setenv("SD_LLM_TIMEOUT", "15s")
	t.Setenv("SD_SCHEMA_DEFAULT", "invoice")
	t.Setenv("SD_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9000" {
		t.Fatalf("expected http addr override")
	}
	if cfg.Dev.Mode {
		t.Fatalf("expected dev mode false")
	}
	if cfg.LLM.APIKey != "sk-test" {
		t.Fatalf("expected api key from env")
	}
	if cfg.LLM.Model != "mistral-small-latest" {
		t.Fatalf("expected model override")
	}
	if cfg.LLM.Timeout != 15*time.Second {
		t.Fatalf("expected timeout override, got %v", cfg.LLM.Timeout)
	}
	if cfg.Schemas.Default != "invoice" {
		t.Fatalf("expected default schema override")
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("expected redis url override")
	}
}

func TestLoadMissingKeyOutsideDevMode(t *testing.T) {
	t.Setenv("SD_DEV_MODE", "false")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected missing credential error")
	}
}

func TestLoadDevModeWithoutKey(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Dev.Mode {
		t.Fatalf("expected dev mode default true")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "supportdesk.yaml")
	doc := `http:
  addr: ":7070"
llm:
  api_key: sk-yaml
  model: mistral-medium-latest
dev:
  mode: false
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":7070" || cfg.LLM.Model != "mistral-medium-latest" {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8090" {
		t.Fatalf("expected default addr, got %s", cfg.HTTP.Addr)
	}
}
