package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/plateview/internal/pricing"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pricing service",
	Long:  "Serve the quote form and the /configure pricing endpoint until interrupted.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host, defaults to server.host")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port, defaults to server.port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return pricing.NewServer(cfg, log.With().Str("component", "pricing").Logger()).Run(ctx)
}
