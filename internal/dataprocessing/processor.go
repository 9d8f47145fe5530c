package dataprocessing

import (
	"context"
	"log/slog"

	"combinecli/pkg/contracts/domain"
)

// Processor builds athlete records from raw rows and applies the
// retention filter in a single pass.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor creates a processor with the given logger.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// BuildRecord constructs an AthleteRecord from one raw row. The ID is
// left unset; IDs are assigned only when a record is accepted, so the
// accepted subset stays dense and 1-based.
func (p *Processor) BuildRecord(row RawRecord) domain.AthleteRecord {
	return domain.AthleteRecord{
		FirstName:    row.Field("first_name"),
		LastName:     row.Field("last_name"),
		Position:     row.Field("position"),
		State:        row.Field("state"),
		GradYear:     CleanNumeric(row["grad_year"]),
		Height:       ParseHeight(row["height"]),
		Weight:       CleanNumeric(row["weight"]),
		Dash40:       CleanNumeric(row["forty_yard_dash"]),
		VerticalJump: CleanNumeric(row["vertical_jump"]),
		BroadJump:    CleanNumeric(row["broad_jump"]),
		ProAgility:   CleanNumeric(row["shuttle_run"]),
		LDrill:       CleanNumeric(row["three_cone"]),
		Conditions:   row.Field("conditions"),
	}
}

// Process converts raw rows into accepted athlete records, accumulating
// summary statistics over the accepted subset in the same pass. Rows
// with none of the tracked measurements are dropped without error.
func (p *Processor) Process(ctx context.Context, rows []RawRecord) ([]domain.AthleteRecord, *Accumulator) {
	acc := NewAccumulator()
	athletes := make([]domain.AthleteRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		record := p.BuildRecord(row)
		if !record.HasMeasurement() {
			dropped++
			continue
		}
		record.ID = len(athletes) + 1
		athletes = append(athletes, record)
		acc.Add(record)
	}

	p.logger.InfoContext(ctx, "processed combine rows",
		slog.Int("input_rows", len(rows)),
		slog.Int("accepted", len(athletes)),
		slog.Int("dropped", dropped))

	return athletes, acc
}
