package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"useffmpeg/internal/ffmpeg"
	"useffmpeg/internal/logx"
	"useffmpeg/internal/tui"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the managed ffmpeg binary",
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, _ []string) error {
	pp, _, err := loadEnvironment(dataDir)
	if err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("useffmpeg remove: data dir=%s", pp.DataDir)

	mgr := ffmpeg.NewManager(pp, logger, nil, nil)
	result, err := mgr.Remove(cmd.Context())
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
	return nil
}
