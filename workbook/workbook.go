// Package workbook loads contract bill workbooks into memory and resolves
// their sheets into the logical categories the extraction pipeline works on.
package workbook

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrUnreadableWorkbook indicates the input could not be opened as a
// spreadsheet at all. This is fatal for the whole run.
var ErrUnreadableWorkbook = errors.New("unreadable workbook")

// RawWorkbook is an in-memory snapshot of an uploaded workbook: the ordered
// sheet names and the raw cell grid of every sheet. It is read once and never
// mutated afterwards.
type RawWorkbook struct {
	SheetNames []string
	Rows       map[string][][]string
}

// Open reads an XLSX workbook from disk.
func Open(path string) (*RawWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()
	return snapshot(f)
}

// OpenReader reads an XLSX workbook from an in-memory stream, e.g. an upload.
func OpenReader(r io.Reader) (*RawWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()
	return snapshot(f)
}

func snapshot(f *excelize.File) (*RawWorkbook, error) {
	names := f.GetSheetList()
	wb := &RawWorkbook{
		SheetNames: names,
		Rows:       make(map[string][][]string, len(names)),
	}
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		wb.Rows[name] = rows
	}
	return wb, nil
}
