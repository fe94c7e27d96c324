package ffmpeg

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, entries map[string][]byte) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	path := filepath.Join(t.TempDir(), "archive.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}
	return path
}

func TestExtractEntry(t *testing.T) {
	content := []byte("fake ffmpeg binary")
	archive := writeZip(t, map[string][]byte{
		"README.txt":     []byte("docs"),
		"bin/ffmpeg.exe": content,
	})

	dest := filepath.Join(t.TempDir(), "ffmpeg.exe")
	if err := extractEntry(archive, "bin/ffmpeg.exe", dest); err != nil {
		t.Fatalf("extract: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("destination content mismatch: %q", got)
	}
}

func TestExtractEntryNotFound(t *testing.T) {
	archive := writeZip(t, map[string][]byte{
		"bin/ffmpeg.exe": []byte("binary"),
	})

	dest := filepath.Join(t.TempDir(), "out")
	err := extractEntry(archive, "ffmpeg", dest)
	if err == nil {
		t.Fatal("expected error for missing entry")
	}

	var extractErr *ExtractError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractError, got %T: %v", err, err)
	}
	if extractErr.Kind != ExtractKindEntryNotFound {
		t.Fatalf("expected entry-not-found kind, got %q", extractErr.Kind)
	}

	if _, statErr := os.Stat(dest); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no destination file, stat returned %v", statErr)
	}
}

func TestExtractEntryCaseSensitive(t *testing.T) {
	archive := writeZip(t, map[string][]byte{
		"FFMPEG": []byte("binary"),
	})

	err := extractEntry(archive, "ffmpeg", filepath.Join(t.TempDir(), "out"))
	var extractErr *ExtractError
	if !errors.As(err, &extractErr) || extractErr.Kind != ExtractKindEntryNotFound {
		t.Fatalf("expected entry-not-found for case mismatch, got %v", err)
	}
}

func TestExtractEntryCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.zip")
	if err := os.WriteFile(path, []byte("this is not a zip file"), 0o644); err != nil {
		t.Fatalf("write bogus archive: %v", err)
	}

	err := extractEntry(path, "ffmpeg", filepath.Join(t.TempDir(), "out"))
	if err == nil {
		t.Fatal("expected error for corrupt archive")
	}

	var extractErr *ExtractError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractError, got %T: %v", err, err)
	}
	if extractErr.Kind != ExtractKindCorrupt {
		t.Fatalf("expected corrupt kind, got %q", extractErr.Kind)
	}
}
