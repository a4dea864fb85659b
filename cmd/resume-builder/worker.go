package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"resume-builder/internal/config"

	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume export jobs from RabbitMQ",
	Long:  "Render queued PDF exports. Needs AMQP_URL and DATABASE_URL so jobs and sessions are shared with the API server.",
	RunE:  runWorker,
}

var workerCount int

func init() {
	workerCmd.Flags().IntVar(&workerCount, "workers", 0, "Concurrent exports (overrides EXPORT_WORKERS)")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.AMQPURL == "" || cfg.DatabaseURL == "" {
		return errors.New("worker requires AMQP_URL and DATABASE_URL")
	}
	if workerCount > 0 {
		cfg.ExportWorkers = workerCount
	}
	log := newLogger(cfg, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info("export worker started", "queue", cfg.ExportQueue, "workers", cfg.ExportWorkers)
	return a.amqpQueue.Consume(ctx, a.exports.Run, cfg.ExportWorkers)
}
