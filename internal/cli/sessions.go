package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List editing sessions on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sessions, err := client.ListSessions(context.Background())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions. Upload a video to start one.")
			return nil
		}
		for _, s := range sessions {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-40s  %s\n", s.ID, s.VideoFilename, s.CreatedAt)
		}
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		if s == nil {
			return fmt.Errorf("local store unavailable")
		}
		defer s.Close()

		recents, err := s.RecentSessions(20)
		if err != nil {
			return fmt.Errorf("recent sessions: %w", err)
		}
		if len(recents) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recent sessions.")
			return nil
		}
		for _, r := range recents {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-40s  %s  %s\n",
				r.SessionID, r.VideoFilename, r.ServerURL, formatOpenedAt(r.LastOpenedAt))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(recentCmd)
}
