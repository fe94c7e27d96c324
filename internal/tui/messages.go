package tui

import "useffmpeg/internal/ffmpeg"

// ProgressMsg carries one download progress snapshot.
type ProgressMsg struct {
	Progress ffmpeg.Progress
}

// WorkDoneMsg signals that the background work has completed.
type WorkDoneMsg struct{}

// ErrorMsg signals a fatal error; the TUI should quit.
type ErrorMsg struct {
	Err error
}
