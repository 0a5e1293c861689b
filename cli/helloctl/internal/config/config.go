package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SweepConfig tunes the sweep commands.
type SweepConfig struct {
	// Directory names the walker never enters.
	Protected []string `yaml:"protected"`
	// Render move summaries as a table by default.
	Table bool `yaml:"table"`
}

// Hooks holds user-supplied commands run around sweeps.
type Hooks struct {
	PostSweep string `yaml:"post_sweep"`
}

type Config struct {
	LogLevel string      `yaml:"log_level"`
	NoColor  bool        `yaml:"no_color"`
	Sweep    SweepConfig `yaml:"sweep"`
	Hooks    Hooks       `yaml:"hooks"`
}

func defaults() Config {
	return Config{
		LogLevel: "warn",
		Sweep:    SweepConfig{Protected: []string{".git"}},
	}
}

// Read loads the config file and applies environment overrides on top.
// The path comes from HELLOKIT_CONFIG or falls back to the user config dir.
// A missing file is not an error; defaults apply.
func Read() (Config, string, error) {
	cfg := defaults()
	path := strings.TrimSpace(os.Getenv("HELLOKIT_CONFIG"))
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "hellokit", "config.yaml")
		} else if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "hellokit", "config.yaml")
		}
	}
	if strings.TrimSpace(path) == "" {
		return applyEnv(cfg), "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), filepath.Dir(path), nil
		}
		return cfg, filepath.Dir(path), err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, filepath.Dir(path), err
	}
	if len(cfg.Sweep.Protected) == 0 {
		cfg.Sweep.Protected = []string{".git"}
	}
	return applyEnv(cfg), filepath.Dir(path), nil
}

func applyEnv(cfg Config) Config {
	cfg.LogLevel = getEnv("HELLOKIT_LOG_LEVEL", cfg.LogLevel)
	switch strings.ToLower(strings.TrimSpace(os.Getenv("HELLOKIT_NO_COLOR"))) {
	case "1", "true":
		cfg.NoColor = true
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
