package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CombineCSVHeader is the canonical header row of the combine dataset
const CombineCSVHeader = "first_name,last_name,position,state,grad_year,height,weight,forty_yard_dash,vertical_jump,broad_jump,shuttle_run,three_cone,conditions"

// SampleCombineCSV is a small but representative combine input: two
// complete rows, one partially populated row, and one row with no
// usable measurements that the importer must drop.
const SampleCombineCSV = CombineCSVHeader + "\n" +
	`Jo,Doe,WR,TX,2024,6' 1,185,4.5,32.5,112,4.21,7.1,Sunny` + "\n" +
	`Sam,Smith,QB,CA,2025,5' 11,178,4.7,,108,,,Indoor` + "\n" +
	`Alex,Lee,WR,TX,2024,,,,30,,,,Rain` + "\n" +
	`Pat,Jones,K,,,,,,,,,,` + "\n"

// WriteCombineCSV writes the sample combine CSV into dir and returns
// its path.
func WriteCombineCSV(t *testing.T, dir string) string {
	t.Helper()
	return WriteCombineCSVContent(t, dir, SampleCombineCSV)
}

// WriteCombineCSVContent writes the given CSV content into dir and
// returns its path.
func WriteCombineCSVContent(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "combine.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write combine fixture: %v", err)
	}
	return path
}
