package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI    AIConfig    `yaml:"ai" validate:"required"`
	Coach CoachLimits `yaml:"coach" validate:"required"`
	Paths PathsConfig `yaml:"paths"`
}

type AIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model" validate:"required"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Timeout int    `yaml:"timeout" validate:"required,min=1,max=120"`
}

type PathsConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Load reads the config file (if present), applies env overrides, fills
// defaults, and validates. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configPath := getConfigPath()

	cfg := Default()
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Env var overrides the file; the placeholder form defers to env too.
	if cfg.AI.APIKey == "" || strings.HasPrefix(cfg.AI.APIKey, "${") {
		if key := os.Getenv("WRITECOACH_API_KEY"); key != "" {
			cfg.AI.APIKey = key
		} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.AI.APIKey = key
		} else {
			cfg.AI.APIKey = ""
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Model:   "gpt-4o-mini",
			BaseURL: "https://api.openai.com/v1",
			Timeout: 15,
		},
		Coach: DefaultCoachLimits(),
		Paths: PathsConfig{
			OutputDir: defaultOutputDir(),
		},
	}
}

func getConfigPath() string {
	if path := os.Getenv("WRITECOACH_CONFIG"); path != "" {
		return path
	}
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "writecoach", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "writecoach", "config.yaml")
}

func defaultOutputDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "writecoach", "reports")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "writecoach", "reports")
}

// expandTilde expands a leading ~/ to the user's home directory.
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) validate() error {
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = defaultOutputDir()
	} else {
		c.Paths.OutputDir = expandTilde(c.Paths.OutputDir)
	}

	if c.Coach.CooldownSeconds == 0 {
		c.Coach = DefaultCoachLimits()
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
