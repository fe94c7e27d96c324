package cli

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"useffmpeg/internal/config"
	"useffmpeg/internal/ffmpeg"
	"useffmpeg/internal/logx"
	"useffmpeg/internal/tui"
)

var (
	downloadURL        string
	downloadExePath    string
	downloadNoProgress bool
)

func newDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download and install the platform's ffmpeg binary",
		RunE:  runDownload,
	}

	cmd.Flags().StringVar(&downloadURL, "url", "", "Archive URL overriding the built-in default")
	cmd.Flags().StringVar(&downloadExePath, "exe-path", "", "Path of the ffmpeg executable inside the archive")
	cmd.Flags().BoolVar(&downloadNoProgress, "no-progress", false, "Disable interactive progress output")

	return cmd
}

func runDownload(cmd *cobra.Command, _ []string) error {
	pp, cfg, err := loadEnvironment(dataDir)
	if err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("useffmpeg download: data dir=%s", pp.DataDir)

	spec, err := downloadSpecOverride(cfg)
	if err != nil {
		return err
	}

	mgr := ffmpeg.NewManager(pp, logger, nil, nil)
	req := ffmpeg.DownloadRequest{Spec: spec}

	url := ""
	if spec != nil {
		url = spec.URL
	} else if def, ok := ffmpeg.DefaultSpec(pp.Platform); ok {
		url = def.URL
	}

	var result ffmpeg.DownloadResult
	if tui.Interactive(cmd.ErrOrStderr(), downloadNoProgress || outputJSON) {
		model := tui.NewDownloadModel(url)
		err = tui.RunWithWork(cmd.ErrOrStderr(), model, func(send func(tea.Msg)) {
			req.OnProgress = func(p ffmpeg.Progress) {
				send(tui.ProgressMsg{Progress: p})
			}
			var downloadErr error
			result, downloadErr = mgr.Download(cmd.Context(), req)
			if downloadErr != nil {
				send(tui.ErrorMsg{Err: downloadErr})
			}
		})
	} else {
		result, err = mgr.Download(cmd.Context(), req)
	}
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

	cmd.Println(tui.SuccessStyle.Render("✓") + " " + result.Message)
	cmd.Println(tui.FaintStyle.Render("  " + result.Path))
	return nil
}

// downloadSpecOverride folds the --url/--exe-path flags and the config file
// into an optional spec override; flags win over config, and either source
// must supply both fields.
func downloadSpecOverride(cfg config.Config) (*ffmpeg.DownloadSpec, error) {
	if downloadURL != "" || downloadExePath != "" {
		spec := &ffmpeg.DownloadSpec{URL: downloadURL, ExecutablePath: downloadExePath}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("--url and --exe-path must be supplied together: %w", err)
		}
		return spec, nil
	}
	if cfg.Download != nil {
		return &ffmpeg.DownloadSpec{
			URL:            cfg.Download.URL,
			ExecutablePath: cfg.Download.ExecutablePath,
		}, nil
	}
	return nil, nil
}
