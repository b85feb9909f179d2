package main

import (
	viewer "github.com/philipparndt/plateview/internal/app"
	"github.com/spf13/cobra"
)

var (
	viewWatch     string
	viewNoSession bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the standalone plate viewer",
	Long: `Open the plate in a standalone viewer window.

With --watch the plate is read from a TOML file and rebuilt whenever the
file changes.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewWatch, "watch", "", "plate TOML file to load and watch for changes")
	viewCmd.Flags().BoolVar(&viewNoSession, "no-session", false, "do not restore or save the last configuration")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	return viewer.Run(viewer.Options{
		Config:      cfg,
		WatchFile:   viewWatch,
		SessionPath: sessionPath(viewNoSession),
		Logger:      log.With().Str("component", "viewer").Logger(),
	})
}
