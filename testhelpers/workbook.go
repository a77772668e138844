// Package testhelpers builds in-memory XLSX fixtures for workbook-processing
// tests, so the real loader is exercised instead of hand-built row slices.
package testhelpers

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is a named grid of cells for a fixture workbook.
type Sheet struct {
	Name string
	Rows [][]any
}

// BuildWorkbook writes an XLSX workbook containing the given sheets in order
// and returns its bytes.
func BuildWorkbook(t *testing.T, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), s.Name)
		} else {
			if _, err := f.NewSheet(s.Name); err != nil {
				t.Fatalf("create sheet %q: %v", s.Name, err)
			}
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name for row %d: %v", r+1, err)
			}
			row := row
			if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
				t.Fatalf("set row %d on %q: %v", r+1, s.Name, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// TitleRows returns a typical label/value Title sheet grid.
func TitleRows() [][]any {
	return [][]any{
		{"Name of Work", "Construction of RCC Drain, Ward 12"},
		{"Contractor", "M/s Sharma Constructions"},
		{"Agreement No", "AGR/2025/041"},
		{"Work Order No", "WO/2025/118"},
		{"Location", "Jaipur"},
		{"Start Date", "01/04/2025"},
		{"Completion Date", "30/09/2025"},
	}
}

// ItemHeader returns a standard tabular sheet header row.
func ItemHeader() []any {
	return []any{"S.No", "Description", "Unit", "Quantity", "Rate", "Amount", "Remark"}
}
