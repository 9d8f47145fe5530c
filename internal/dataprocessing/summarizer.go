package dataprocessing

import (
	"sort"
	"strconv"

	"combinecli/pkg/contracts/domain"
)

// Accumulator gathers dataset-level counts and frequency tables over
// accepted records. It records the first-seen order of category values
// so that top-N reporting has a deterministic tie-break.
type Accumulator struct {
	summary       domain.SummaryStatistics
	positionOrder map[string]int
	nextSeen      int
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		summary: domain.SummaryStatistics{
			Positions: make(map[string]int),
			States:    make(map[string]int),
			GradYears: make(map[string]int),
		},
		positionOrder: make(map[string]int),
	}
}

// Add folds one accepted record into the running summary. Position is
// always counted, including the empty string; state only when non-empty;
// graduation year only when present, keyed by its truncated integer
// string form.
func (a *Accumulator) Add(record domain.AthleteRecord) {
	a.summary.TotalAthletes++

	if record.Dash40 != nil {
		a.summary.With40Time++
	}
	if record.VerticalJump != nil {
		a.summary.WithVertical++
	}
	if record.BroadJump != nil {
		a.summary.WithBroadJump++
	}

	if _, seen := a.positionOrder[record.Position]; !seen {
		a.positionOrder[record.Position] = a.nextSeen
		a.nextSeen++
	}
	a.summary.Positions[record.Position]++

	if record.State != "" {
		a.summary.States[record.State]++
	}

	if record.GradYear != nil {
		key := strconv.Itoa(int(*record.GradYear))
		a.summary.GradYears[key]++
	}
}

// Summary returns the accumulated statistics.
func (a *Accumulator) Summary() domain.SummaryStatistics {
	return a.summary
}

// PositionCount pairs a position with its frequency for ranked output.
type PositionCount struct {
	Position string
	Count    int
}

// TopPositions returns up to n positions ordered by descending count.
// Ties are broken by first-seen order, keeping the ranking stable across
// runs over the same input.
func (a *Accumulator) TopPositions(n int) []PositionCount {
	ranked := make([]PositionCount, 0, len(a.summary.Positions))
	for pos, count := range a.summary.Positions {
		ranked = append(ranked, PositionCount{Position: pos, Count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return a.positionOrder[ranked[i].Position] < a.positionOrder[ranked[j].Position]
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
