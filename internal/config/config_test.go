package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_PORT",
	"STORE_DRIVER",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"DB_AUTO_MIGRATE",
	"REDIS_ADDRESS",
	"CACHE_TTL",
	"LLM_PROVIDER",
	"LLM_BASE_URL",
	"LLM_API_KEY",
	"LLM_MODEL",
	"LLM_TIMEOUT",
	"LLM_RATE_LIMIT",
	"LLM_RATE_BURST",
	"LOG_LEVEL",
}

// clearEnv blanks every variable Load reads; empty values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		t.Setenv(env, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.StoreDriver != StoreDriverPostgres {
			t.Errorf("StoreDriver = %v, want postgres", cfg.StoreDriver)
		}
		if cfg.DBName != "website_builder" {
			t.Errorf("DBName = %v, want website_builder", cfg.DBName)
		}
		if !cfg.DBAutoMigrate {
			t.Error("DBAutoMigrate = false, want true")
		}
		if cfg.LLMProvider != LLMProviderOpenAI {
			t.Errorf("LLMProvider = %v, want openai", cfg.LLMProvider)
		}
		if cfg.LLMBaseURL != "http://localhost:11434/v1" {
			t.Errorf("LLMBaseURL = %v, want http://localhost:11434/v1", cfg.LLMBaseURL)
		}
		if cfg.LLMModel != "llama3.1:8b" {
			t.Errorf("LLMModel = %v, want llama3.1:8b", cfg.LLMModel)
		}
		if cfg.LLMAPIKey != "ollama" {
			t.Errorf("LLMAPIKey = %v, want ollama", cfg.LLMAPIKey)
		}
		if cfg.LLMRateLimit != 2 {
			t.Errorf("LLMRateLimit = %v, want 2", cfg.LLMRateLimit)
		}
		if cfg.CacheEnabled() {
			t.Error("CacheEnabled() = true, want false without REDIS_ADDRESS")
		}
		if cfg.CacheTTL != 5*time.Minute {
			t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_AUTO_MIGRATE", "false")
		t.Setenv("REDIS_ADDRESS", "cache:6379")
		t.Setenv("CACHE_TTL", "30s")
		t.Setenv("LLM_PROVIDER", "mock")
		t.Setenv("LLM_MODEL", "gpt-4o-mini")
		t.Setenv("LLM_TIMEOUT", "15s")
		t.Setenv("LLM_RATE_LIMIT", "0.5")
		t.Setenv("LLM_RATE_BURST", "1")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.StoreDriver != StoreDriverMemory {
			t.Errorf("StoreDriver = %v, want memory", cfg.StoreDriver)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBMaxConns != 50 {
			t.Errorf("DBMaxConns = %v, want 50", cfg.DBMaxConns)
		}
		if cfg.DBAutoMigrate {
			t.Error("DBAutoMigrate = true, want false")
		}
		if !cfg.CacheEnabled() {
			t.Error("CacheEnabled() = false, want true")
		}
		if cfg.CacheTTL != 30*time.Second {
			t.Errorf("CacheTTL = %v, want 30s", cfg.CacheTTL)
		}
		if cfg.LLMProvider != LLMProviderMock {
			t.Errorf("LLMProvider = %v, want mock", cfg.LLMProvider)
		}
		if cfg.LLMModel != "gpt-4o-mini" {
			t.Errorf("LLMModel = %v, want gpt-4o-mini", cfg.LLMModel)
		}
		if cfg.LLMTimeout != 15*time.Second {
			t.Errorf("LLMTimeout = %v, want 15s", cfg.LLMTimeout)
		}
		if cfg.LLMRateLimit != 0.5 {
			t.Errorf("LLMRateLimit = %v, want 0.5", cfg.LLMRateLimit)
		}
		if cfg.LLMRateBurst != 1 {
			t.Errorf("LLMRateBurst = %v, want 1", cfg.LLMRateBurst)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_PORT", "not-a-port")
		t.Setenv("LLM_TIMEOUT", "soon")
		t.Setenv("DB_AUTO_MIGRATE", "maybe")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.LLMTimeout != 90*time.Second {
			t.Errorf("LLMTimeout = %v, want 90s", cfg.LLMTimeout)
		}
		if !cfg.DBAutoMigrate {
			t.Error("DBAutoMigrate = false, want true")
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
		}
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown store driver", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"unknown llm provider", map[string]string{"LLM_PROVIDER": "carrier-pigeon"}},
		{"negative rate limit", map[string]string{"LLM_RATE_LIMIT": "-1"}},
		{"non-positive cache ttl", map[string]string{"CACHE_TTL": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=7070\nLLM_PROVIDER=mock\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })
	// godotenv never overrides variables that are already set, even to "".
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("LLM_PROVIDER")
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LLM_PROVIDER")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != "7070" {
		t.Errorf("ServerPort = %v, want 7070 from .env", cfg.ServerPort)
	}
	if cfg.LLMProvider != LLMProviderMock {
		t.Errorf("LLMProvider = %v, want mock from .env", cfg.LLMProvider)
	}
}
