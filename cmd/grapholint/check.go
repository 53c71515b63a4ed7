package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graphol-dev/grapholint/internal/engine"
	"github.com/graphol-dev/grapholint/internal/output"
	"github.com/graphol-dev/grapholint/internal/profiles"
)

var (
	profileName string
	format      string
	outFile     string
	filterExpr  string
	failFast    bool
	noColor     bool
	jobs        int
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <document.yaml> [document.yaml...]",
	Short: "Validate Graphol documents against an OWL 2 profile",
	Long: `Load one or more Graphol diagram documents and validate every edge and
node against the selected profile's rule catalog.

Profiles:
  owl2      Full OWL 2 structural rules (default)
  owl2ql    OWL 2 plus the QL fragment restrictions
  owl2rl    OWL 2 plus the RL fragment restrictions

Filtering:
  --filter "rule == 'self-connection'"           Keep diagnostics from one rule
  --filter "kind == 'edge' && diagram == 'main'" Combine fields with expressions`,
	Args: cobra.MinimumNArgs(1),
}

func init() {
	checkCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCheckAction(cmd.Context(), args)
	}
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&profileName, "profile", "p", "owl2", "Validation profile: owl2, owl2ql, owl2rl")
	checkCmd.Flags().StringVar(&format, "format", "table", "Output format: table, json, yaml, sarif")
	checkCmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file path (default: stdout)")
	checkCmd.Flags().StringVar(&filterExpr, "filter", "", "Diagnostic filter expression (e.g. \"rule == 'self-connection'\")")
	checkCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failing document")
	checkCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored table output")
	checkCmd.Flags().IntVar(&jobs, "jobs", 0, "Maximum documents validated concurrently (0 = default)")
}

// runCheckAction implements the core logic for the check command
func runCheckAction(ctx context.Context, paths []string) error {
	if !checkCmd.Flags().Changed("profile") && viper.IsSet("profile") {
		profileName = viper.GetString("profile")
	}
	if !checkCmd.Flags().Changed("format") && viper.IsSet("format") {
		format = viper.GetString("format")
	}

	profileType, err := profiles.ParseType(profileName)
	if err != nil {
		return err
	}

	opts := engine.DefaultOptions(profileType)
	opts.FailFast = failFast
	if jobs > 0 {
		opts.MaxConcurrentFiles = jobs
	}

	// Compile --filter expression ONCE at startup
	if filterExpr != "" {
		program, err := engine.CompileFilter(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid --filter expression: %w\nExample: rule == 'self-connection' && kind == 'edge'", err)
		}
		opts.Filter = program
	}

	slog.Info("validating documents", "profile", profileType, "files", len(paths))

	report, err := engine.New(opts).CheckFiles(ctx, paths)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	slog.Info("validation complete",
		"duration", report.Duration,
		"checked", report.Summary.Checked,
		"passed", report.Summary.Passed,
		"failed", report.Summary.Failed)

	// Determine output writer
	writer := os.Stdout
	if outFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		slog.Info("writing output", "file", outFile, "format", format)
	}

	formatter, err := output.New(format, writer, output.Options{
		Indent:  true,
		NoColor: noColor || outFile != "",
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Return non-zero exit code if any check failed
	if report.HasFailures() {
		return fmt.Errorf("check failed: %d passed, %d failed",
			report.Summary.Passed, report.Summary.Failed)
	}

	return nil
}
