package ffmpeg

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/exec"
	"time"

	"useffmpeg/internal/paths"
)

// Logger is the minimal logging surface the manager writes to.
type Logger interface {
	Printf(format string, v ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// Manager owns one platform's managed ffmpeg installation: checking it,
// downloading it, executing it, and removing it. Each operation is an
// independent unit of work; conflicting download/remove calls serialize on a
// per-installation lock file.
type Manager struct {
	Paths   paths.InstallPaths
	Logger  Logger
	Runner  Runner
	Client  *http.Client
	Emitter Emitter
}

// NewManager builds a manager with usable defaults for any nil collaborator.
func NewManager(p paths.InstallPaths, logger Logger, runner Runner, emitter Emitter) *Manager {
	if logger == nil {
		logger = noopLogger{}
	}
	if runner == nil {
		runner = CmdRunner{}
	}
	if emitter == nil {
		emitter = noopEmitter{}
	}
	return &Manager{
		Paths:   p,
		Logger:  logger,
		Runner:  runner,
		Client:  &http.Client{Timeout: 5 * time.Minute},
		Emitter: emitter,
	}
}

func (m *Manager) logf(format string, v ...any) {
	if m == nil || m.Logger == nil {
		return
	}
	m.Logger.Printf(format, v...)
}

// CheckResult reports whether the managed binary is available. Path and
// Version are only populated when Available is true.
type CheckResult struct {
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
}

// Check probes the managed installation. A missing binary or a failed version
// probe is a normal negative outcome, not an error.
func (m *Manager) Check(ctx context.Context) CheckResult {
	binary := m.Paths.Binary
	if !m.Paths.Installed() {
		m.logf("check: %s not installed", binary)
		return CheckResult{Available: false}
	}

	version := probeVersion(ctx, m.Runner, binary)
	if version == "" {
		m.logf("check: %s present but version probe failed", binary)
		return CheckResult{Available: false}
	}

	m.logf("check: %s version=%q", binary, version)
	return CheckResult{Available: true, Path: binary, Version: version}
}

// CommandResult captures the outcome of one ffmpeg invocation. ExitCode is nil
// when the process was terminated abnormally (e.g. by signal).
type CommandResult struct {
	Success  bool   `json:"success"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode *int   `json:"exitCode,omitempty"`
}

// Execute runs the managed binary with the given arguments, verbatim, and
// waits for it to exit. A process that starts and exits non-zero is a normal
// result with Success=false; failure to start at all is an error.
func (m *Manager) Execute(ctx context.Context, args []string) (CommandResult, error) {
	binary := m.Paths.Binary
	if !m.Paths.Installed() {
		return CommandResult{}, ErrNotInstalled
	}

	m.logf("execute: %s args=%q", binary, args)
	result, err := m.Runner.Run(ctx, binary, args)
	stdout := string(result.Stdout)
	stderr := string(result.Stderr)

	if err == nil {
		code := 0
		return CommandResult{Success: true, Stdout: stdout, Stderr: stderr, ExitCode: &code}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res := CommandResult{Success: false, Stdout: stdout, Stderr: stderr}
		if exitErr.ProcessState != nil && exitErr.ProcessState.Exited() {
			code := exitErr.ProcessState.ExitCode()
			res.ExitCode = &code
		}
		m.logf("execute: exited code=%v", res.ExitCode)
		return res, nil
	}

	return CommandResult{}, &SpawnError{Path: binary, Err: err}
}

// RemoveResult reports the outcome of a removal.
type RemoveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Remove deletes the managed binary. Removing an absent installation is a
// success with an informational message, so the operation is idempotent.
func (m *Manager) Remove(ctx context.Context) (RemoveResult, error) {
	unlock, err := m.acquireLock(ctx)
	if err != nil {
		return RemoveResult{}, err
	}
	defer unlock()

	binary := m.Paths.Binary
	if _, err := os.Stat(binary); err != nil {
		m.logf("remove: %s already absent", binary)
		return RemoveResult{Success: true, Message: "ffmpeg is not installed"}, nil
	}

	if err := os.Remove(binary); err != nil {
		return RemoveResult{}, &RemoveError{Path: binary, Err: err}
	}

	m.logf("remove: deleted %s", binary)
	return RemoveResult{Success: true, Message: "ffmpeg removed"}, nil
}
