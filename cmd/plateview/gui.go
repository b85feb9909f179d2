package main

import (
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/philipparndt/plateview/internal/gui"
	"github.com/spf13/cobra"
)

const appID = "io.github.philipparndt.plateview"

var guiNoSession bool

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the plate configurator",
	Long:  "Open the desktop configurator with dimension inputs, material selection, live preview and quotes.",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

func init() {
	guiCmd.Flags().BoolVar(&guiNoSession, "no-session", false, "do not restore or save the last configuration")
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	a := fyneapp.NewWithID(appID)

	w, err := gui.NewWindow(a, gui.Options{
		Config:      cfg,
		SessionPath: sessionPath(guiNoSession),
		Logger:      log.With().Str("component", "gui").Logger(),
	})
	if err != nil {
		return err
	}

	w.ShowAndRun()
	return nil
}
