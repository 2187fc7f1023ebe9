package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a session's video with subtitles burned in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}

		client := newClient()
		resp, err := client.Export(context.Background(), sessionID)
		if err != nil {
			return fmt.Errorf("export session %d: %w", sessionID, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
		if resp.DownloadURL != "" {
			fmt.Fprintln(cmd.OutOrStdout(), client.VideoURL(resp.DownloadURL))
			return nil
		}

		// The export is still running; report where it stands.
		status, err := client.ExportState(context.Background(), sessionID)
		if err != nil {
			return fmt.Errorf("export status %d: %w", sessionID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", status.Status)
		if status.DownloadURL != "" {
			fmt.Fprintln(cmd.OutOrStdout(), client.VideoURL(status.DownloadURL))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
