package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/plateview/internal/quote"
	"github.com/spf13/cobra"
)

var (
	quotePlate    plateFlags
	quoteMaterial string
	quoteSurface  string
	quoteQuantity int
	quoteEndpoint string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Request a quote from the pricing service",
	Args:  cobra.NoArgs,
	RunE:  runQuote,
}

func init() {
	addPlateFlags(quoteCmd, &quotePlate)
	flags := quoteCmd.Flags()
	flags.StringVarP(&quoteMaterial, "material", "m", "aluminum", "material")
	flags.StringVarP(&quoteSurface, "surface", "s", "none", "surface treatment")
	flags.IntVarP(&quoteQuantity, "quantity", "q", 1, "quantity")
	flags.StringVar(&quoteEndpoint, "endpoint", "", "pricing service URL, defaults to quote.endpoint")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	d, err := quotePlate.dimensions(cmd)
	if err != nil {
		return err
	}
	if quoteQuantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	endpoint := cfg.Quote.Endpoint
	if quoteEndpoint != "" {
		endpoint = quoteEndpoint
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Quote.Timeout.Duration)
	defer cancel()

	client := quote.NewClient(endpoint, cfg.Quote.Timeout.Duration)
	q, err := client.Submit(ctx, quote.Configuration{
		Material:         quoteMaterial,
		SurfaceTreatment: quoteSurface,
		Dimensions:       d,
		Quantity:         quoteQuantity,
	})
	if err != nil {
		log.Debug().Str("endpoint", endpoint).Msg("quote request failed")
		return fmt.Errorf("%s (%w)", quote.ErrorMessage, err)
	}

	fmt.Print(quote.Text(*q))
	return nil
}
