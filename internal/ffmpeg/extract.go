package ffmpeg

import (
	"archive/zip"
	"errors"
	"io"
	"os"
)

// extractEntry streams the decompressed bytes of the archive entry whose
// internal path equals entryPath (exact, case-sensitive) into dest. No other
// entry is touched and archive permissions or timestamps are not preserved.
// When the entry is missing no file is created at dest.
func extractEntry(archivePath, entryPath, dest string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		kind := ExtractKindIO
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrChecksum) {
			kind = ExtractKindCorrupt
		}
		return &ExtractError{Kind: kind, Entry: entryPath, Err: err}
	}
	defer reader.Close()

	var entry *zip.File
	for _, file := range reader.File {
		if file.Name == entryPath {
			entry = file
			break
		}
	}
	if entry == nil {
		return &ExtractError{Kind: ExtractKindEntryNotFound, Entry: entryPath}
	}

	rc, err := entry.Open()
	if err != nil {
		return &ExtractError{Kind: ExtractKindCorrupt, Entry: entryPath, Err: err}
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return &ExtractError{Kind: ExtractKindIO, Entry: entryPath, Err: err}
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		kind := ExtractKindIO
		if errors.Is(err, zip.ErrChecksum) || errors.Is(err, zip.ErrFormat) {
			kind = ExtractKindCorrupt
		}
		return &ExtractError{Kind: kind, Entry: entryPath, Err: err}
	}
	if err := out.Close(); err != nil {
		return &ExtractError{Kind: ExtractKindIO, Entry: entryPath, Err: err}
	}
	return nil
}
