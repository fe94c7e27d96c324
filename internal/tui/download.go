package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 150 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// tickMsg drives the spinner animation.
type tickMsg time.Time

// DownloadModel renders a single download: a progress bar when the total size
// is known, a spinner plus byte counter when it is not.
type DownloadModel struct {
	url string
	bar progress.Model

	downloaded int64
	total      *int64
	percentage *float64

	done bool
	err  error
	tick int
}

// NewDownloadModel creates a model for the given source URL.
func NewDownloadModel(url string) DownloadModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return DownloadModel{url: url, bar: bar}
}

func scheduleTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init satisfies the tea.Model interface.
func (m DownloadModel) Init() tea.Cmd {
	return scheduleTick()
}

// Update satisfies the tea.Model interface.
func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.tick++
		if m.done {
			return m, nil
		}
		return m, scheduleTick()

	case ProgressMsg:
		m.downloaded = msg.Progress.Downloaded
		m.total = msg.Progress.Total
		m.percentage = msg.Progress.Percentage
		return m, nil

	case WorkDoneMsg:
		m.done = true
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View satisfies the tea.Model interface.
func (m DownloadModel) View() string {
	if m.done && m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Downloading") + " " + FaintStyle.Render(m.url))
	b.WriteByte('\n')

	if m.percentage != nil {
		b.WriteString(m.bar.ViewAs(*m.percentage / 100))
		fmt.Fprintf(&b, "  %s / %s", formatBytes(m.downloaded), formatBytes(*m.total))
	} else {
		spinner := spinnerFrames[m.tick%len(spinnerFrames)]
		fmt.Fprintf(&b, "%s %s received", spinner, formatBytes(m.downloaded))
	}
	b.WriteByte('\n')

	return b.String()
}

// Done returns whether the model has finished (work done or error).
func (m DownloadModel) Done() bool {
	return m.done
}

// Err returns any fatal error that occurred.
func (m DownloadModel) Err() error {
	return m.err
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
