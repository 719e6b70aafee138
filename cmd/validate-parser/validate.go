package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/areino/validate-taegis-parser/internal/auth"
	"github.com/areino/validate-taegis-parser/internal/config"
	"github.com/areino/validate-taegis-parser/internal/taegis"
)

const separator = "============================================================"

// newValidateCommand builds the validate-parser root command.
func newValidateCommand() *cobra.Command {
	var (
		configPath  string
		environment string
		parentID    int
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "validate-parser <par-file>",
		Short: "Validate a .PAR parser file against the Taegis API",
		Long: `Validate a parser definition (.PAR) file by submitting it to the Taegis
Roadrunner validation endpoint. Exits 0 if the parser is valid, 1 otherwise.

Authentication uses OAuth via the CLIENT_ID and CLIENT_SECRET environment
variables. If these are not set, the tool prompts for device code
authentication.

Environments:
  US1, charlie, production  US2, delta  US3, foxtrot  EU, echo`,
		Args:          cobra.ExactArgs(1),
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
			if err := cfg.Validate(); err != nil {
				return err
			}

			// The file is read before any network activity so a bad path
			// fails fast without contacting the API.
			code, err := readParserFile(args[0])
			if err != nil {
				return err
			}

			endpoint, err := cfg.APIEndpoint()
			if err != nil {
				return err
			}
			ts, err := auth.TokenSource(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			client := taegis.NewGraphQLClient(endpoint, "", ts)

			input := taegis.UnvalidatedParserInput{Code: code, ParentID: parentID}
			return runValidate(cmd.Context(), client, input, args[0], os.Stderr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: auto-discover)")
	cmd.Flags().StringVarP(&environment, "environment", "e", "", "Taegis environment (US1, US2, US3, EU, charlie, delta, foxtrot, echo, production)")
	cmd.Flags().IntVarP(&parentID, "parent-id", "p", 0, "Parent parser ID (0 for standalone parsers)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// readParserFile reads the full contents of a .PAR file, failing fast if
// the path does not resolve to a readable regular file.
func readParserFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("cannot access file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("path is not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	return string(data), nil
}

// runValidate submits the parser and reports the verdict. It returns nil
// only when the parser is valid.
func runValidate(ctx context.Context, client taegis.Client, input taegis.UnvalidatedParserInput, path string, msg io.Writer) error {
	fmt.Fprintf(msg, "Validating parser file: %s\n", path)
	fmt.Fprintf(msg, "Using parent_id: %d\n", input.ParentID)
	fmt.Fprintln(msg, "Connecting to Taegis API...")

	result, err := client.ValidateParser(ctx, input)
	if err != nil {
		return fmt.Errorf("error validating parser: %w", err)
	}

	fmt.Fprintf(msg, "\n%s\n", separator)
	fmt.Fprintln(msg, "Validation Results:")
	fmt.Fprintln(msg, separator)

	if result.Ok {
		fmt.Fprintln(msg, "Status: VALID")
		if result.Message != "" {
			fmt.Fprintf(msg, "Message: %s\n", result.Message)
		}
		fmt.Fprintln(msg, separator)
		return nil
	}

	fmt.Fprintln(msg, "Status: INVALID")
	if result.Message != "" {
		fmt.Fprintf(msg, "Error: %s\n", result.Message)
	}
	fmt.Fprintln(msg, separator)
	return fmt.Errorf("parser validation failed")
}
