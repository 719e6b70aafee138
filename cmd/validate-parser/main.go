package main

import (
	"fmt"
	"log/slog"
	"os"
)

var version = "dev"

func main() {
	rootCmd := newValidateCommand()
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps errors to the process exit code: 0 only for a
// valid parser, 1 for an invalid parser or any error.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// setupLogging configures the process-wide logger once at startup.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
