package ffmpeg

import (
	"context"
	"strings"
)

// probeVersion runs `path -version` and returns the first line of output, or
// "" when the binary cannot be spawned, exits non-zero, or prints nothing.
// A failed probe is a normal outcome, never an error.
func probeVersion(ctx context.Context, runner Runner, path string) string {
	result, err := runner.Run(ctx, path, []string{"-version"})
	if err != nil {
		return ""
	}

	output := strings.TrimSpace(string(result.Stdout))
	if output == "" {
		output = strings.TrimSpace(string(result.Stderr))
	}
	return firstLine(output)
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}
