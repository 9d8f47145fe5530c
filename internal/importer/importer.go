package importer

import (
	"context"
	"fmt"
	"log/slog"

	"combinecli/internal/dataprocessing"
	"combinecli/internal/exporter"
	"combinecli/pkg/contracts/domain"
)

// Importer runs the combine data pipeline: read the input file, build
// and filter athlete records, finalize statistics, and write the JSON
// artifact. The whole run is one linear pass with no retries.
type Importer struct {
	logger    *slog.Logger
	processor *dataprocessing.Processor
	writer    *exporter.JSONWriter
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Dataset      *domain.Dataset
	TopPositions []dataprocessing.PositionCount
}

// New creates an importer with the given logger.
func New(logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		logger:    logger.With(slog.String("component", "importer")),
		processor: dataprocessing.NewProcessor(logger),
		writer:    exporter.NewJSONWriter(logger),
	}
}

// Run executes the full pipeline from inputPath to outputPath. Any I/O
// failure on read or write aborts the run; per-field and per-row
// failures never do.
func (i *Importer) Run(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	i.logger.InfoContext(ctx, "starting combine import",
		slog.String("input", inputPath),
		slog.String("output", outputPath))

	rows, err := dataprocessing.ReadRows(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	athletes, acc := i.processor.Process(ctx, rows)

	dataset := &domain.Dataset{
		Athletes:         athletes,
		Summary:          acc.Summary(),
		MetricStatistics: dataprocessing.CalculateMetricStatistics(athletes),
		DataSource:       domain.DataSourceLabel,
		TotalRecords:     len(athletes),
	}

	if err := i.writer.WriteDataset(outputPath, dataset); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	i.logger.InfoContext(ctx, "combine import completed",
		slog.Int("total_records", dataset.TotalRecords),
		slog.Int("with_40_time", dataset.Summary.With40Time),
		slog.Int("positions", len(dataset.Summary.Positions)),
		slog.Int("states", len(dataset.Summary.States)))

	return &Result{
		Dataset:      dataset,
		TopPositions: acc.TopPositions(5),
	}, nil
}
