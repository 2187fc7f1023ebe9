package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a video and start a new editing session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("video file: %w", err)
		}

		client := newClient()
		fmt.Fprintf(cmd.OutOrStdout(), "Uploading %s...\n", path)
		sess, err := client.Upload(context.Background(), path)
		if err != nil {
			return fmt.Errorf("upload: %w", err)
		}
		logger.Info("uploaded video",
			zap.Int("session", sess.ID),
			zap.String("filename", sess.VideoFilename))

		return runEditor(client, sess, path)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
