package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadRows loads a combine input file into header-keyed raw rows.
// CSV is the primary format; files ending in .xlsx are read as Excel
// workbooks. The file is fully consumed and closed before returning.
func ReadRows(path string) ([]RawRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readWorkbookRows(path)
	}
	return readCSVRows(path)
}

func readCSVRows(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRecord
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, rowFromFields(header, fields))
	}

	slog.Debug("Read CSV input",
		slog.String("path", path),
		slog.Int("columns", len(header)),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// readWorkbookRows reads combine data from an Excel workbook. It uses
// the first sheet whose header row carries the athlete name columns.
func readWorkbookRows(path string) ([]RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		sheetRows, err := f.GetRows(sheet)
		if err != nil || len(sheetRows) < 1 {
			continue
		}

		header := sheetRows[0]
		if !isCombineHeader(header) {
			continue
		}
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}

		rows := make([]RawRecord, 0, len(sheetRows)-1)
		for _, fields := range sheetRows[1:] {
			rows = append(rows, rowFromFields(header, fields))
		}

		slog.Debug("Read workbook input",
			slog.String("path", path),
			slog.String("sheet", sheet),
			slog.Int("rows", len(rows)))

		return rows, nil
	}

	return nil, fmt.Errorf("no combine data sheet found in %s", filepath.Base(path))
}

func isCombineHeader(header []string) bool {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[strings.ToLower(strings.TrimSpace(h))] = true
	}
	return seen["first_name"] && seen["last_name"]
}

// rowFromFields zips a header with one row of cells. Rows shorter than
// the header leave the trailing columns absent.
func rowFromFields(header, fields []string) RawRecord {
	row := make(RawRecord, len(header))
	for i, name := range header {
		if name == "" || i >= len(fields) {
			continue
		}
		row[name] = fields[i]
	}
	return row
}
