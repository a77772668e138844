// Package bill orchestrates processing of a contract bill workbook end to
// end: sheet resolution, column mapping, line-item extraction, financial
// aggregation and note generation. The output Result is the canonical object
// that document rendering and packaging consume; they must treat it as
// read-only.
package bill

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"contractbilling/billing"
	"contractbilling/extract"
	"contractbilling/notes"
	"contractbilling/report"
	"contractbilling/workbook"
)

// Options configures one processing run.
type Options struct {
	Financial billing.Options
}

// Result is the fully computed billing data model for one workbook.
type Result struct {
	RunID   string
	Pattern string

	Valid         bool
	Problems      []string
	MissingSheets []workbook.Category

	Title        extract.ProjectInfo
	WorkOrder    []extract.LineItem
	BillQuantity []extract.LineItem
	ExtraItems   []extract.LineItem
	Totals       billing.Totals

	NoteSheetContent string

	Warnings []report.Warning
}

// ProcessFile loads an XLSX workbook from disk and processes it. The only
// error returned is an unreadable workbook; every other failure is reported
// on the Result itself.
func ProcessFile(path string, opts Options) (*Result, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	return Process(wb, opts), nil
}

// ProcessReader is ProcessFile for an in-memory workbook stream.
func ProcessReader(r io.Reader, opts Options) (*Result, error) {
	wb, err := workbook.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return Process(wb, opts), nil
}

// Process runs the pipeline over an already-loaded workbook. Each stage is a
// pure function of its inputs; the workbook is not retained. A missing
// required sheet aborts before any extraction and yields Valid=false with the
// precise list of missing categories.
func Process(wb *workbook.RawWorkbook, opts Options) *Result {
	collector := &report.Collector{}
	res := &Result{RunID: uuid.NewString()}

	mapping := workbook.ResolveSheets(wb.SheetNames, collector)
	res.Pattern = mapping.Pattern
	res.MissingSheets = mapping.Missing

	if !mapping.Valid {
		for _, c := range mapping.Missing {
			res.Problems = append(res.Problems,
				fmt.Sprintf("no sheet found for category %s", c))
		}
		res.Warnings = collector.Warnings()
		return res
	}
	res.Valid = true

	if name, ok := mapping.Sheet(workbook.CategoryTitle); ok {
		res.Title = extract.Title(wb.Rows[name])
	}
	if name, ok := mapping.Sheet(workbook.CategoryWorkOrder); ok {
		res.WorkOrder = extract.Items(extract.KindWorkOrder, name, wb.Rows[name], collector)
	}
	if name, ok := mapping.Sheet(workbook.CategoryBillQuantity); ok {
		res.BillQuantity = extract.Items(extract.KindBillQuantity, name, wb.Rows[name], collector)
	}
	if name, ok := mapping.Sheet(workbook.CategoryExtraItems); ok {
		res.ExtraItems = extract.Items(extract.KindExtraItems, name, wb.Rows[name], collector)
	}

	res.Totals = billing.Aggregate(res.WorkOrder, res.BillQuantity, res.ExtraItems, opts.Financial)

	// The work order total is the deviation baseline. Workbooks whose work
	// order sheet carries no amounts fall back to the grand total, which
	// reads as 100% completion.
	baseline := res.Totals.WorkOrderTotal
	if baseline == 0 {
		baseline = res.Totals.GrandTotal
	}
	noteSet := notes.Generate(res.Totals, baseline, res.Totals.BillQuantityTotal, res.ExtraItems)
	res.NoteSheetContent = noteSet.Render()

	res.Warnings = collector.Warnings()
	return res
}

// Summary returns per-category item counts for display after a run.
func (r *Result) Summary() map[string]int {
	return map[string]int{
		"work_order":    len(r.WorkOrder),
		"bill_quantity": len(r.BillQuantity),
		"extra_items":   len(r.ExtraItems),
	}
}
