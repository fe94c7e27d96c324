package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

const fetchChunkSize = 64 * 1024

// fetchArchive streams a GET response body to dest, invoking onProgress after
// every chunk. The callback runs synchronously on the calling goroutine.
// There is no retry and no resumption; a mid-transfer failure leaves the
// partially written file in place for the caller to discard.
func fetchArchive(ctx context.Context, client *http.Client, url, dest string, onProgress func(Progress)) error {
	if client == nil {
		client = http.DefaultClient
	}
	if onProgress == nil {
		onProgress = func(Progress) {}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Kind: FetchKindHTTP, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", "useffmpeg/1.0")

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &FetchError{Kind: FetchKindCanceled, URL: url, Err: err}
		}
		return &FetchError{Kind: FetchKindHTTP, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{Kind: FetchKindHTTP, URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return &FetchError{Kind: FetchKindIO, URL: url, Err: err}
	}

	total := resp.ContentLength // -1 when the server omits it
	var downloaded int64
	buf := make([]byte, fetchChunkSize)

	for {
		select {
		case <-ctx.Done():
			out.Close()
			return &FetchError{Kind: FetchKindCanceled, URL: url, Err: ctx.Err()}
		default:
		}

		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				out.Close()
				return &FetchError{Kind: FetchKindIO, URL: url, Err: err}
			}
			downloaded += int64(n)
			onProgress(newProgress(downloaded, total))
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			out.Close()
			if errors.Is(readErr, context.Canceled) || errors.Is(readErr, context.DeadlineExceeded) {
				return &FetchError{Kind: FetchKindCanceled, URL: url, Err: readErr}
			}
			return &FetchError{Kind: FetchKindIO, URL: url, Err: readErr}
		}
	}

	if err := out.Close(); err != nil {
		return &FetchError{Kind: FetchKindIO, URL: url, Err: err}
	}
	return nil
}
