package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"combinecli/internal/config"
	"combinecli/internal/importer"
	"combinecli/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "input combine file (.csv or .xlsx; defaults to data/seeds/football_combine_data_combined.csv)")
	out := flag.String("out", "", "output JSON file path (defaults to data/seeds/athletes_data.json)")
	flag.Parse()

	// Initialize paths first to get default file locations
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("importer.log")
	}

	// Precedence: flags, then config, then the centralized defaults.
	if *in == "" {
		*in = cfg.Importer.InputFile
	}
	if *in == "" {
		*in = paths.CombineCSV
	}
	if *out == "" {
		*out = cfg.Importer.OutputFile
	}
	if *out == "" {
		*out = paths.AthletesJSON
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("Starting combine data import",
		slog.String("input_file", *in),
		slog.String("output_file", *out),
		slog.String("executable_dir", paths.ExecutableDir))

	fmt.Println("Processing combine data...")
	fmt.Printf("Input:  %s\n", *in)
	fmt.Printf("Output: %s\n", *out)

	result, err := importer.New(logger).Run(context.Background(), *in, *out)
	if err != nil {
		logger.Error("Import failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}

	printRunSummary(result)

	logger.Info("Combine data import completed",
		slog.Int("total_records", result.Dataset.TotalRecords),
		slog.String("output_path", *out))
}

// printRunSummary writes the human-readable run summary to the console.
func printRunSummary(result *importer.Result) {
	summary := result.Dataset.Summary

	fmt.Printf("\nSuccessfully processed %d athletes\n", summary.TotalAthletes)
	fmt.Println("\nQuick Stats:")
	fmt.Printf("  - Athletes with 40-yard dash: %d\n", summary.With40Time)
	fmt.Printf("  - Athletes with vertical jump: %d\n", summary.WithVertical)
	fmt.Printf("  - Athletes with broad jump: %d\n", summary.WithBroadJump)
	fmt.Printf("  - Unique positions: %d\n", len(summary.Positions))
	fmt.Printf("  - States represented: %d\n", len(summary.States))

	fmt.Println("\nTop 5 Positions:")
	for _, pc := range result.TopPositions {
		fmt.Printf("  - %s: %d athletes\n", pc.Position, pc.Count)
	}
}
