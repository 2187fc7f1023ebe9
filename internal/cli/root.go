// Package cli wires the command-line interface.
package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yoursandeshshrestha/videoable/internal/api"
	"github.com/yoursandeshshrestha/videoable/internal/app"
	"github.com/yoursandeshshrestha/videoable/internal/config"
	"github.com/yoursandeshshrestha/videoable/internal/logging"
	"github.com/yoursandeshshrestha/videoable/internal/store"
)

var (
	cfgPath   string
	serverURL string
	verbose   bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "videoable",
	Short: "Chat-driven subtitle editor for videos",
	Long: `Videoable is a terminal client for the videoable backend.

Upload a video, edit its subtitles through natural-language chat turns,
preview the result against a synchronized playback clock, and export the
video with subtitles burned in.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			cfgPath = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}

		logger, err = logging.New(cfg.LogFile, verbose)
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().
		StringVarP(&serverURL, "server", "s", "", "Backend base URL")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func newClient() *api.Client {
	return api.New(cfg.ServerURL, cfg.RequestTimeout.Std())
}

// openStore opens the local recents store; failure is non-fatal since the
// store is advisory.
func openStore() *store.Store {
	path := cfg.StorePath
	if path == "" {
		path = store.DefaultPath()
	}
	s, err := store.Open(path)
	if err != nil {
		logger.Warn("local store unavailable", zap.Error(err))
		return nil
	}
	return s
}

// runEditor launches the TUI for an opened session.
func runEditor(client *api.Client, sess api.Session, localPath string) error {
	s := openStore()
	if s != nil {
		defer s.Close()
	}

	model := app.New(app.Options{
		Client:       client,
		Session:      sess,
		LocalPath:    localPath,
		Store:        s,
		Logger:       logger,
		TickInterval: cfg.TickInterval.Std(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func formatOpenedAt(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
