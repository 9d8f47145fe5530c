package domain

// AthleteRecord represents a single cleaned combine entry.
// Nullable measurements use pointer fields: nil means the value was
// absent or unparseable in the source row.
type AthleteRecord struct {
	ID        int      `json:"id" validate:"required,min=1"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Position  string   `json:"position"`
	State     string   `json:"state"`
	GradYear  *float64 `json:"gradYear"`

	// Measured metrics
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	Dash40       *float64 `json:"dash40"`
	VerticalJump *float64 `json:"verticalJump"`
	BroadJump    *float64 `json:"broadJump"`
	ProAgility   *float64 `json:"proAgility"`
	LDrill       *float64 `json:"lDrill"`

	// Additional context recorded at the event
	Conditions string `json:"conditions"`
}

// HasMeasurement reports whether the record carries at least one of the
// metrics that qualify it for retention in the output set.
func (a *AthleteRecord) HasMeasurement() bool {
	return a.Dash40 != nil || a.VerticalJump != nil || a.BroadJump != nil ||
		a.Height != nil || a.Weight != nil
}

// SummaryStatistics holds dataset-level counts and frequency tables
// accumulated over accepted records.
type SummaryStatistics struct {
	TotalAthletes int            `json:"total_athletes"`
	With40Time    int            `json:"with_40_time"`
	WithVertical  int            `json:"with_vertical"`
	WithBroadJump int            `json:"with_broad_jump"`
	Positions     map[string]int `json:"positions"`
	States        map[string]int `json:"states"`
	GradYears     map[string]int `json:"grad_years"`
}

// MetricStatistics holds descriptive statistics for one numeric metric.
// Mean, Std, Min and Max are nil when fewer than two observations exist;
// Count always reports the true number of non-null observations.
type MetricStatistics struct {
	Mean  *float64 `json:"mean"`
	Std   *float64 `json:"std"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// MetricNames lists the numeric metrics statistics are computed for, in
// the order they appear in reports.
var MetricNames = []string{
	"dash40",
	"verticalJump",
	"broadJump",
	"proAgility",
	"lDrill",
	"height",
	"weight",
}

// Dataset is the output document written by the importer.
type Dataset struct {
	Athletes         []AthleteRecord             `json:"athletes"`
	Summary          SummaryStatistics           `json:"summary"`
	MetricStatistics map[string]MetricStatistics `json:"metricStatistics"`
	DataSource       string                      `json:"dataSource"`
	TotalRecords     int                         `json:"totalRecords" validate:"min=0"`
}

// DataSourceLabel identifies the upstream dataset in the output document.
const DataSourceLabel = "Kaggle - High School Football Combine Dataset"

// Metric returns the value of the named numeric metric, or nil when the
// name is unknown. Names follow the JSON field names.
func (a *AthleteRecord) Metric(name string) *float64 {
	switch name {
	case "dash40":
		return a.Dash40
	case "verticalJump":
		return a.VerticalJump
	case "broadJump":
		return a.BroadJump
	case "proAgility":
		return a.ProAgility
	case "lDrill":
		return a.LDrill
	case "height":
		return a.Height
	case "weight":
		return a.Weight
	default:
		return nil
	}
}
