package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <session-id>",
	Short: "Open an existing editing session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}

		client := newClient()
		sess, err := client.GetSession(context.Background(), sessionID)
		if err != nil {
			return fmt.Errorf("open session %d: %w", sessionID, err)
		}

		return runEditor(client, sess, "")
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
