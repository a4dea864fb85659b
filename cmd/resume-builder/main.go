// Command resume-builder serves the resume builder API, runs export workers
// and renders or scores resumes from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"resume-builder/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume-builder",
	Short:         "Resume builder API and tools",
	Long:          "Edit resumes in sessions, preview them in five layouts and export them to PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger installs the process logger. Long-running commands log JSON,
// one-shot commands log text to stderr.
func newLogger(cfg *config.Config, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	log := slog.New(h)
	slog.SetDefault(log)
	return log
}
