package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// DownloadRequest optionally overrides the built-in download spec and adds a
// local progress callback alongside the manager's emitter.
type DownloadRequest struct {
	Spec       *DownloadSpec
	OnProgress func(Progress)
}

// DownloadResult reports a completed installation.
type DownloadResult struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}

// Download runs the full install pipeline: resolve the spec, fetch the
// archive to a temporary file with progress events, extract the executable
// entry to a second temporary file, and rename it into the final path.
// Temporary files from a failed step are left in place for diagnosis; the
// downloaded archive of a successful install is deleted best-effort.
func (m *Manager) Download(ctx context.Context, req DownloadRequest) (DownloadResult, error) {
	spec, err := resolveSpec(m.Paths.Platform, req.Spec)
	if err != nil {
		return DownloadResult{}, err
	}

	if err := m.Paths.EnsureBinDir(); err != nil {
		return DownloadResult{}, err
	}

	unlock, err := m.acquireLock(ctx)
	if err != nil {
		return DownloadResult{}, err
	}
	defer unlock()

	archive, err := os.CreateTemp(m.Paths.BinDir, "ffmpeg-download-*.tmp")
	if err != nil {
		return DownloadResult{}, fmt.Errorf("create archive temp: %w", err)
	}
	archivePath := archive.Name()
	archive.Close()

	m.logf("download: url=%s entry=%s archive=%s", spec.URL, spec.ExecutablePath, archivePath)

	onProgress := func(p Progress) {
		m.Emitter.Emit(ProgressChannel, p)
		if req.OnProgress != nil {
			req.OnProgress(p)
		}
	}

	if err := fetchArchive(ctx, m.Client, spec.URL, archivePath, onProgress); err != nil {
		return DownloadResult{}, fmt.Errorf("download ffmpeg: %w", err)
	}

	extracted, err := os.CreateTemp(m.Paths.BinDir, "ffmpeg-extract-*.tmp")
	if err != nil {
		return DownloadResult{}, fmt.Errorf("create extract temp: %w", err)
	}
	extractedPath := extracted.Name()
	extracted.Close()

	if err := extractEntry(archivePath, spec.ExecutablePath, extractedPath); err != nil {
		return DownloadResult{}, fmt.Errorf("extract ffmpeg: %w", err)
	}

	if err := m.place(extractedPath); err != nil {
		return DownloadResult{}, err
	}

	// The archive is no longer needed; a leftover is harmless.
	if err := os.Remove(archivePath); err != nil {
		m.logf("download: cleanup archive: %v", err)
	}

	m.logf("download: installed %s", m.Paths.Binary)
	return DownloadResult{
		Success: true,
		Path:    m.Paths.Binary,
		Message: "ffmpeg downloaded successfully",
	}, nil
}

// place moves the extracted binary into the final path, overwriting any prior
// installation. The temp file lives in the destination directory, so the
// rename is atomic and never leaves a half-written binary at the final path.
func (m *Manager) place(extractedPath string) error {
	if runtime.GOOS != "windows" {
		if err := os.Chmod(extractedPath, 0o755); err != nil {
			return fmt.Errorf("chmod extracted binary: %w", err)
		}
	}

	if err := os.Rename(extractedPath, m.Paths.Binary); err != nil {
		return fmt.Errorf("place binary: %w", err)
	}
	return nil
}

// acquireLock takes the per-installation advisory lock, polling until it is
// free or the context is done. Conflicting download/remove calls on the same
// path serialize here instead of interleaving.
func (m *Manager) acquireLock(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(m.Paths.BinDir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare bin dir: %w", err)
	}

	lockPath := filepath.Join(m.Paths.BinDir, "install.lock")
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire lock: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
