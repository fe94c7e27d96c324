package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"useffmpeg/internal/ffmpeg"
	"useffmpeg/internal/logx"
	"useffmpeg/internal/tui"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether the managed ffmpeg binary is available",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	pp, _, err := loadEnvironment(dataDir)
	if err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("useffmpeg check: data dir=%s", pp.DataDir)

	mgr := ffmpeg.NewManager(pp, logger, nil, nil)
	result := mgr.Check(cmd.Context())

	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.Available {
		cmd.Println(tui.SuccessStyle.Render("✓") + " " + tui.HeaderStyle.Render("ffmpeg") + " " + result.Version)
		cmd.Println(tui.FaintStyle.Render("  " + result.Path))
	} else {
		cmd.Println(tui.ErrorStyle.Render("✗") + " " + tui.HeaderStyle.Render("ffmpeg") + " not available")
		cmd.Println(tui.FaintStyle.Render("  run `useffmpeg download` to install it"))
	}
	return nil
}
