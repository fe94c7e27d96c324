package ffmpeg

import (
	"bytes"
	"context"
	"os/exec"
)

// RunResult carries the captured output streams of a finished process.
type RunResult struct {
	Stdout []byte
	Stderr []byte
}

// Runner abstracts child-process execution so probing and command execution
// can be tested without real binaries.
type Runner interface {
	Run(ctx context.Context, command string, args []string) (RunResult, error)
}

// CmdRunner executes commands with os/exec, waiting for completion and
// buffering both output streams.
type CmdRunner struct{}

func (CmdRunner) Run(ctx context.Context, command string, args []string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	return RunResult{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}, err
}

var _ Runner = CmdRunner{}
