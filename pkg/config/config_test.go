package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %v, want 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %v, want memory", cfg.Cache.Type)
	}
	if cfg.Provider.BaseURL != "https://api.openverse.org" {
		t.Errorf("Provider.BaseURL = %v", cfg.Provider.BaseURL)
	}
	if cfg.Provider.TimeoutSeconds != 30 {
		t.Errorf("Provider.TimeoutSeconds = %v, want 30", cfg.Provider.TimeoutSeconds)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9090")
	os.Setenv("CACHE_TYPE", "redis")
	os.Setenv("REDIS_ADDRESS", "redis:6379")
	os.Setenv("PROVIDER_BASE_URL", "https://api.example.org")
	os.Setenv("PROVIDER_REQUESTS_PER_SECOND", "5")
	defer os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %v, want 9090", cfg.Server.Port)
	}
	if cfg.Cache.Type != "redis" || cfg.Cache.Redis.Address != "redis:6379" {
		t.Errorf("redis config not loaded: %+v", cfg.Cache)
	}
	if cfg.Provider.BaseURL != "https://api.example.org" {
		t.Errorf("Provider.BaseURL = %v", cfg.Provider.BaseURL)
	}
	if cfg.Provider.RequestsPerSecond != 5 {
		t.Errorf("Provider.RequestsPerSecond = %v, want 5", cfg.Provider.RequestsPerSecond)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	os.Clearenv()

	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate returned error for default config: %v", err)
	}
}

func TestValidate_InvalidCacheType(t *testing.T) {
	os.Clearenv()

	cfg, _ := LoadFromEnv()
	cfg.Cache.Type = "memcached"

	if cfg.Validate() == nil {
		t.Error("Validate should reject unknown cache types")
	}
}

func TestValidate_MissingRedisAddress(t *testing.T) {
	os.Clearenv()

	cfg, _ := LoadFromEnv()
	cfg.Cache.Type = "redis"
	cfg.Cache.Redis.Address = ""

	if cfg.Validate() == nil {
		t.Error("Validate should require a redis address for the redis cache")
	}
}

func TestValidate_MissingProviderBaseURL(t *testing.T) {
	os.Clearenv()

	cfg, _ := LoadFromEnv()
	cfg.Provider.BaseURL = ""

	if cfg.Validate() == nil {
		t.Error("Validate should require a provider base URL")
	}
}
