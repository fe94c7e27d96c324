package ffmpeg

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned when no built-in download spec exists for
// the host platform and the caller supplied none.
var ErrUnsupportedPlatform = errors.New("no download spec for platform")

// ErrNotInstalled is returned by Execute when the managed binary is absent.
var ErrNotInstalled = errors.New("ffmpeg is not installed")

// FetchKind classifies a download failure.
type FetchKind string

const (
	FetchKindHTTP     FetchKind = "http"
	FetchKindIO       FetchKind = "io"
	FetchKindCanceled FetchKind = "canceled"
)

// FetchError reports a failed archive download. A partial destination file may
// remain on disk for the caller to discard.
type FetchError struct {
	Kind FetchKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractKind classifies an archive extraction failure.
type ExtractKind string

const (
	ExtractKindEntryNotFound ExtractKind = "entry-not-found"
	ExtractKindCorrupt       ExtractKind = "corrupt"
	ExtractKindIO            ExtractKind = "io"
)

// ExtractError reports a failed extraction of a single archive entry.
type ExtractError struct {
	Kind  ExtractKind
	Entry string
	Err   error
}

func (e *ExtractError) Error() string {
	if e.Kind == ExtractKindEntryNotFound {
		return fmt.Sprintf("entry %q not found in archive", e.Entry)
	}
	return fmt.Sprintf("extract %q: %v", e.Entry, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// SpawnError reports that the binary could not be started at all, as opposed
// to a process that started and exited non-zero.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// RemoveError reports a failed deletion of an installed binary.
type RemoveError struct {
	Path string
	Err  error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("remove %s: %v", e.Path, e.Err)
}

func (e *RemoveError) Unwrap() error { return e.Err }
