package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joycybakery/fournil/config"
	"github.com/joycybakery/fournil/database/seeders"
	"github.com/joycybakery/fournil/pkg/database"
)

// bootDB loads config and opens the MongoDB connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// fournil seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer disconnect()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, database.DB)
	},
}

// fournil db:indexes
var dbIndexesCmd = &cobra.Command{
	Use:   "db:indexes",
	Short: "Create the MongoDB indexes every collection needs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer disconnect()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		fmt.Println("Ensuring indexes…")
		if err := database.EnsureIndexes(ctx); err != nil {
			return err
		}
		fmt.Println("✅  Indexes in place.")
		return nil
	},
}

func disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	database.Disconnect(ctx) //nolint:errcheck
}
