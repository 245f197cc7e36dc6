package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "3000" || cfg.StoreDriver != "sql" || cfg.DBType != "sqlite" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.PasswordScheme != "demo" || cfg.ActivityLimit != 5 {
		t.Errorf("Unexpected account defaults: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "STORE_DRIVER=REDIS\nREDIS_ADDR=cache:6380\nACTIVITY_LIMIT=8\nS3_PATH_STYLE=true\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv("ENV_FILE", envFile)
	// godotenv never overrides variables that are already set
	t.Setenv("REDIS_ADDR", "override:6379")
	t.Cleanup(func() {
		os.Unsetenv("STORE_DRIVER")
		os.Unsetenv("ACTIVITY_LIMIT")
		os.Unsetenv("S3_PATH_STYLE")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreDriver != "redis" || cfg.ActivityLimit != 8 || !cfg.S3PathStyle {
		t.Errorf("Env file not applied: %+v", cfg)
	}
	if cfg.RedisAddr != "override:6379" {
		t.Errorf("Expected process env to win, got %s", cfg.RedisAddr)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{StoreDriver: "sql", DBType: "sqlite", DBDatabase: "x.db", PasswordScheme: "demo", ActivityLimit: 5}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.StoreDriver = "tape" }, true},
		{"s3 without bucket", func(c *Config) { c.StoreDriver = "s3" }, true},
		{"postgres without user", func(c *Config) { c.DBType = "postgres" }, true},
		{"bad scheme", func(c *Config) { c.PasswordScheme = "md5" }, true},
		{"zero activity limit", func(c *Config) { c.ActivityLimit = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
