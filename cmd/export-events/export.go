package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/areino/validate-taegis-parser/internal/auth"
	"github.com/areino/validate-taegis-parser/internal/config"
	"github.com/areino/validate-taegis-parser/internal/events"
	"github.com/areino/validate-taegis-parser/internal/metadata"
	"github.com/areino/validate-taegis-parser/internal/output"
	"github.com/areino/validate-taegis-parser/internal/prompt"
	"github.com/areino/validate-taegis-parser/internal/taegis"
)

// newExportCommand builds the export-events root command.
func newExportCommand() *cobra.Command {
	var (
		configPath  string
		environment string
		timeRange   string
		maxRows     int
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "export-events <tenant-id> <output-file>",
		Short: "Export unparsed Taegis events grouped by log source",
		Long: `Query unparsed (generic schema) events for a tenant, aggregate them by
sensor_id and sensor_type, select a log source interactively, and export
the selected events to a file: one raw original_data value per line.

Authentication uses OAuth via the CLIENT_ID and CLIENT_SECRET environment
variables. If these are not set, the tool prompts for device code
authentication.

Environments:
  US1, charlie, production  US2, delta  US3, foxtrot  EU, echo`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if environment != "" {
				cfg.Taegis.Environment = environment
			}
			if cmd.Flags().Changed("max-rows") {
				cfg.Defaults.MaxRows = maxRows
			}
			if cmd.Flags().Changed("time-range") {
				cfg.Defaults.TimeRange = timeRange
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// An interrupt during the interactive prompt is a clean exit.
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			defer signal.Stop(sigCh)
			go func() {
				<-sigCh
				fmt.Fprintln(os.Stderr, "\nExiting.")
				os.Exit(0)
			}()

			return runExport(cmd.Context(), cfg, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: auto-discover)")
	cmd.Flags().StringVarP(&environment, "environment", "e", "", "Taegis environment (US1, US2, US3, EU, charlie, delta, foxtrot, echo, production)")
	cmd.Flags().IntVarP(&maxRows, "max-rows", "m", 1000, "Maximum number of rows to retrieve")
	cmd.Flags().StringVarP(&timeRange, "time-range", "t", "-1d", "Time range for query")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// runExport authenticates and runs the export pipeline against the real API.
func runExport(ctx context.Context, cfg *config.Config, tenantID, outputFile string) error {
	endpoint, err := cfg.APIEndpoint()
	if err != nil {
		return err
	}

	ts, err := auth.TokenSource(ctx, cfg)
	if err != nil {
		return err
	}

	client := taegis.NewGraphQLClient(endpoint, tenantID, ts)
	return runExportPipeline(ctx, client, cfg, tenantID, outputFile, os.Stdin, os.Stderr)
}

// runExportPipeline is the linear export flow: query, aggregate, select,
// re-query, export. It is separated from runExport so tests can drive it
// with a mock client and scripted input.
func runExportPipeline(ctx context.Context, client taegis.Client, cfg *config.Config, tenantID, outputFile string, in io.Reader, msg io.Writer) error {
	opts := taegis.QueryOptions{
		PageSize: cfg.Defaults.PageSize,
		MaxRows:  cfg.Defaults.MaxRows,
	}

	query := taegis.BuildEventQuery(cfg.Defaults.TimeRange)
	fmt.Fprintf(msg, "Querying unparsed events for tenant: %s\n", tenantID)
	fmt.Fprintf(msg, "Query: %s\n", query)
	fmt.Fprintln(msg, "This may take a while...")

	tracker := metadata.New()
	evts, err := events.FetchAll(ctx, client, query, tenantID, opts, tracker)
	if err != nil {
		return fmt.Errorf("failed to query events: %w", err)
	}
	fmt.Fprintf(msg, "\nRetrieved %s\n", tracker.Summary())

	if len(evts) == 0 {
		fmt.Fprintln(msg, "No events found for the specified tenant and time range.")
		return nil
	}

	ranked := events.Rank(events.Aggregate(evts))
	prompt.DisplaySources(msg, ranked)

	key, err := prompt.SelectSource(in, msg, ranked)
	if errors.Is(err, prompt.ErrQuit) {
		fmt.Fprintln(msg, "Exiting.")
		return nil
	}
	if err != nil {
		return err
	}

	filtered := taegis.BuildFilteredQuery(key.SensorID, key.SensorType, cfg.Defaults.TimeRange)
	fmt.Fprintf(msg, "\nQuerying events for sensor_id='%s' sensor_type='%s'...\n", key.SensorID, key.SensorType)

	selTracker := metadata.New()
	selected, err := events.FetchAll(ctx, client, filtered, tenantID, opts, selTracker)
	if err != nil {
		return fmt.Errorf("failed to query selected events: %w", err)
	}
	fmt.Fprintf(msg, "Retrieved %s for selected log source\n", selTracker.Summary())

	return exportEvents(selected, outputFile, msg)
}

// exportEvents writes the selected events' original_data to the output file.
func exportEvents(evts []taegis.Event, path string, msg io.Writer) error {
	writer, err := output.NewFileWriter(path)
	if err != nil {
		return err
	}

	count, err := output.ExportOriginalData(writer, evts)
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("error writing to file %s: %w", path, err)
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		abs = path
	}
	fmt.Fprintf(msg, "\nSuccessfully exported %d events (original_data only, one per line) to: %s\n", count, abs)
	return nil
}
