package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete an editing session and its video from the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}

		client := newClient()
		if err := client.DeleteSession(context.Background(), sessionID); err != nil {
			return fmt.Errorf("delete session %d: %w", sessionID, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %d\n", sessionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
