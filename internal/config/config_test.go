package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Coach.CooldownSeconds != 8 {
		t.Errorf("CooldownSeconds = %d, want 8", cfg.Coach.CooldownSeconds)
	}
	if cfg.Coach.PauseSeconds != 3 {
		t.Errorf("PauseSeconds = %d, want 3", cfg.Coach.PauseSeconds)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name: "timeout too large",
			mutate: func(c *Config) {
				c.AI.Timeout = 500
			},
			wantErr: true,
			errMsg:  "Timeout",
		},
		{
			name: "bad base url",
			mutate: func(c *Config) {
				c.AI.BaseURL = "not a url"
			},
			wantErr: true,
			errMsg:  "BaseURL",
		},
		{
			name: "missing model",
			mutate: func(c *Config) {
				c.AI.Model = ""
			},
			wantErr: true,
			errMsg:  "Model",
		},
		{
			name: "cooldown out of range",
			mutate: func(c *Config) {
				c.Coach.CooldownSeconds = 5000
			},
			wantErr: true,
			errMsg:  "CooldownSeconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q does not mention %s", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
ai:
  model: claude-3-5-sonnet-20241022
  base_url: https://api.anthropic.com/v1
  timeout: 20
coach:
  cooldown_seconds: 12
  pause_seconds: 4
  max_retries: 1
  max_concurrent_scores: 2
  rate_limit:
    requests_per_minute: 10
    burst_size: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WRITECOACH_CONFIG", path)
	t.Setenv("WRITECOACH_API_KEY", "file-test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AI.APIKey != "file-test-key" {
		t.Errorf("APIKey = %q, want env override", cfg.AI.APIKey)
	}
	if cfg.Coach.CooldownSeconds != 12 {
		t.Errorf("CooldownSeconds = %d, want 12", cfg.Coach.CooldownSeconds)
	}
	if cfg.AI.Timeout != 20 {
		t.Errorf("Timeout = %d, want 20", cfg.AI.Timeout)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("WRITECOACH_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("WRITECOACH_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want default", cfg.AI.Model)
	}
	if cfg.AI.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.AI.APIKey)
	}
}
