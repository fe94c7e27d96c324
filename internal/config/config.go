package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the optional on-disk settings for useffmpeg.
type Config struct {
	Version  int             `yaml:"version"`
	DataDir  string          `yaml:"data_dir,omitempty"`
	Download *DownloadConfig `yaml:"download,omitempty"`
}

// DownloadConfig overrides the built-in archive source for the host platform.
type DownloadConfig struct {
	URL            string `yaml:"url"`
	ExecutablePath string `yaml:"executable_path"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{Version: 1}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Download == nil {
		return nil
	}
	if strings.TrimSpace(c.Download.URL) == "" {
		return fmt.Errorf("download.url is required when download is set")
	}
	if strings.TrimSpace(c.Download.ExecutablePath) == "" {
		return fmt.Errorf("download.executable_path is required when download is set")
	}
	return nil
}
