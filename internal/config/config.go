package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Dev struct {
		Mode bool `yaml:"mode"`
	} `yaml:"dev"`
	LLM struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"llm"`
	Facts struct {
		Path string `yaml:"path"`
	} `yaml:"facts"`
	Schemas struct {
		Dir     string `yaml:"dir"`
		Default string `yaml:"default"`
	} `yaml:"schemas"`
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Redis struct {
		URL      string        `yaml:"url"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"redis"`
	Worker struct {
		PopTimeout time.Duration `yaml:"pop_timeout"`
	} `yaml:"worker"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func Default() Config {
	var cfg Config
	cfg.HTTP.Addr = ":8090"
	cfg.Dev.Mode = true
	cfg.LLM.Model = "mistral-large-latest"
	cfg.LLM.Timeout = 60 * time.Second
	cfg.Schemas.Dir = "configs/schemas"
	cfg.Schemas.Default = "medical_notes"
	cfg.Redis.CacheTTL = time.Hour
	cfg.Worker.PopTimeout = 5 * time.Second
	cfg.Log.Level = "info"
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)

	// The credential is fatal at startup, not per request. Dev mode runs
	// against the scripted provider instead.
	if !cfg.Dev.Mode && cfg.LLM.APIKey == "" {
		return cfg, errors.New("missing llm.api_key (or SD_MISTRAL_API_KEY)")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SD_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("SD_DEV_MODE"); v != "" {
		cfg.Dev.Mode = parseBool(v, cfg.Dev.Mode)
	}
	if v := os.Getenv("SD_MISTRAL_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("SD_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("SD_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("SD_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = d
		}
	}
	if v := os.Getenv("SD_FACTS_PATH"); v != "" {
		cfg.Facts.Path = v
	}
	if v := os.Getenv("SD_SCHEMA_DIR"); v != "" {
		cfg.Schemas.Dir = v
	}
	if v := os.Getenv("SD_SCHEMA_DEFAULT"); v != "" {
		cfg.Schemas.Default = v
	}
	if v := os.Getenv("SD_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SD_REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("SD_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Redis.CacheTTL = d
		}
	}
	if v := os.Getenv("SD_WORKER_POP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Worker.PopTimeout = d
		}
	}
	if v := os.Getenv("SD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func parseBool(input string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
