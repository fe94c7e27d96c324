package tui

import (
	"errors"
	"strings"
	"testing"

	"useffmpeg/internal/ffmpeg"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestDownloadModelProgressUpdates(t *testing.T) {
	model := NewDownloadModel("https://example.com/ffmpeg.zip")

	updated, _ := model.Update(ProgressMsg{Progress: ffmpeg.Progress{
		Downloaded: 512,
		Total:      int64Ptr(1024),
		Percentage: float64Ptr(50),
	}})
	m := updated.(DownloadModel)

	if m.downloaded != 512 {
		t.Fatalf("expected downloaded 512, got %d", m.downloaded)
	}
	view := m.View()
	if !strings.Contains(view, "512 B") {
		t.Fatalf("expected byte counter in view, got %q", view)
	}
	if !strings.Contains(view, "https://example.com/ffmpeg.zip") {
		t.Fatalf("expected url in view, got %q", view)
	}
}

func TestDownloadModelUnknownTotalUsesSpinner(t *testing.T) {
	model := NewDownloadModel("https://example.com/ffmpeg.zip")

	updated, _ := model.Update(ProgressMsg{Progress: ffmpeg.Progress{Downloaded: 2048}})
	m := updated.(DownloadModel)

	view := m.View()
	if !strings.Contains(view, "received") {
		t.Fatalf("expected spinner line for unknown total, got %q", view)
	}
}

func TestDownloadModelDone(t *testing.T) {
	model := NewDownloadModel("https://example.com/ffmpeg.zip")

	updated, _ := model.Update(WorkDoneMsg{})
	m := updated.(DownloadModel)
	if !m.Done() {
		t.Fatal("expected done after WorkDoneMsg")
	}
	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
}

func TestDownloadModelError(t *testing.T) {
	model := NewDownloadModel("https://example.com/ffmpeg.zip")

	updated, _ := model.Update(ErrorMsg{Err: errors.New("boom")})
	m := updated.(DownloadModel)
	if !m.Done() {
		t.Fatal("expected done after ErrorMsg")
	}
	if m.Err() == nil {
		t.Fatal("expected error retained")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Fatalf("expected error in view, got %q", m.View())
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tc := range cases {
		if got := formatBytes(tc.in); got != tc.want {
			t.Fatalf("formatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
