package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"useffmpeg/internal/config"
	"useffmpeg/internal/paths"
)

var (
	dataDir    string
	outputJSON bool
)

// Execute runs the root cobra command. A child ffmpeg process that exited
// non-zero propagates its exit code; every other failure exits 1.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "useffmpeg",
		Short: "Managed on-demand ffmpeg binary",
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Path to the data directory holding the managed binary")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDownloadCmd())
	cmd.AddCommand(newExecCmd())
	cmd.AddCommand(newRemoveCmd())

	return cmd
}

// loadEnvironment resolves install paths and the optional config file. A
// data_dir set in the config redirects the whole environment unless the flag
// or environment variable already pinned one.
func loadEnvironment(dataDirFlag string) (paths.InstallPaths, config.Config, error) {
	pp, err := paths.Resolve(dataDirFlag)
	if err != nil {
		return paths.InstallPaths{}, config.Config{}, err
	}

	cfg, err := config.Load(pp.ConfigFile())
	if err != nil {
		return paths.InstallPaths{}, config.Config{}, err
	}

	if dataDirFlag == "" && os.Getenv("USEFFMPEG_DATA_DIR") == "" && cfg.DataDir != "" {
		pp, err = paths.Resolve(cfg.DataDir)
		if err != nil {
			return paths.InstallPaths{}, config.Config{}, err
		}
	}

	return pp, cfg, nil
}
