package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "useffmpeg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "useffmpeg.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("expected default version 1, got %d", cfg.Version)
	}
	if cfg.Download != nil {
		t.Fatalf("expected no download override, got %+v", cfg.Download)
	}
}

func TestLoadDownloadOverride(t *testing.T) {
	path := writeConfig(t, `
version: 1
data_dir: /opt/useffmpeg
download:
  url: https://example.com/ffmpeg.zip
  executable_path: bin/ffmpeg
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != "/opt/useffmpeg" {
		t.Fatalf("unexpected data dir: %q", cfg.DataDir)
	}
	if cfg.Download == nil {
		t.Fatal("expected download override")
	}
	if cfg.Download.URL != "https://example.com/ffmpeg.zip" {
		t.Fatalf("unexpected url: %q", cfg.Download.URL)
	}
	if cfg.Download.ExecutablePath != "bin/ffmpeg" {
		t.Fatalf("unexpected executable path: %q", cfg.Download.ExecutablePath)
	}
}

func TestLoadIncompleteDownloadOverride(t *testing.T) {
	path := writeConfig(t, `
download:
  url: https://example.com/ffmpeg.zip
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for download override without executable_path")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "download: [not a mapping")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
