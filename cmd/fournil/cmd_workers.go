package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joycybakery/fournil/app/jobs"
	"github.com/joycybakery/fournil/pkg/cache"
	"github.com/joycybakery/fournil/pkg/database"
	"github.com/joycybakery/fournil/pkg/queue"
)

var queueWorkersFlag int

// fournil queue:work — standalone worker process, so email and webhook
// delivery can run outside the web server.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer disconnect()

		if err := cache.Connect(); err != nil {
			return fmt.Errorf("queue:work needs Redis: %w", err)
		}
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
		queue.UseCollection(database.Collection("failedJobs"))

		jobs.Boot()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 4
		}

		fmt.Printf("🚀 Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\n⚡ Queue worker stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 4, "Number of concurrent workers")
}
