package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"useffmpeg/internal/ffmpeg"
	"useffmpeg/internal/logx"
)

// exitCodeError propagates a child process exit code to the process exit.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d", e.code)
}

// ExitCode returns the child's exit code.
func (e exitCodeError) ExitCode() int { return e.code }

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [flags] -- <ffmpeg args...>",
		Short: "Run the managed ffmpeg binary with the given arguments",
		Args:  cobra.ArbitraryArgs,
		RunE:  runExec,
	}

	// ffmpeg flags like -i must reach the child untouched.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runExec(cmd *cobra.Command, args []string) error {
	pp, _, err := loadEnvironment(dataDir)
	if err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("useffmpeg exec: args=%q", args)

	mgr := ffmpeg.NewManager(pp, logger, nil, nil)
	result, err := mgr.Execute(cmd.Context(), args)
	if err != nil {
		return err
	}

	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.Stdout != "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
	}
	if !result.Success {
		if result.ExitCode != nil {
			return exitCodeError{code: *result.ExitCode}
		}
		return fmt.Errorf("ffmpeg terminated abnormally")
	}
	return nil
}
