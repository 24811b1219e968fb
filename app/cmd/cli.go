package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/velato/storefront/app/catalog"
	"github.com/velato/storefront/app/configs"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("Key generation complete. Copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:  "catalog-stats",
				Usage: "Print a summary of the bundled sample catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					store := catalog.NewStoreFromFixture()
					min, max := store.PriceBounds()
					fmt.Printf("products:   %d\n", len(store.Products()))
					fmt.Printf("categories: %d\n", len(store.Categories()))
					fmt.Printf("brands:     %d\n", len(store.Brands()))
					fmt.Printf("materials:  %d\n", len(store.Materials()))
					fmt.Printf("prices:     %s - %s\n", min.StringFixed(2), max.StringFixed(2))
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
