package extract

import (
	"strings"

	"contractbilling/report"
)

// Field is a canonical line-item column.
type Field string

const (
	FieldSerialNo     Field = "serial_no"
	FieldDescription  Field = "description"
	FieldUnit         Field = "unit"
	FieldQuantity     Field = "quantity"
	FieldRate         Field = "rate"
	FieldAmount       Field = "amount"
	FieldRemark       Field = "remark"
	FieldApprovalRef  Field = "approval_ref"
	FieldPrevQuantity Field = "prev_quantity"
)

// SheetKind selects the candidate table used for header matching. The three
// tabular sheets carry slightly different header vocabularies.
type SheetKind int

const (
	KindWorkOrder SheetKind = iota
	KindBillQuantity
	KindExtraItems
)

func (k SheetKind) String() string {
	switch k {
	case KindWorkOrder:
		return "work_order"
	case KindBillQuantity:
		return "bill_quantity"
	case KindExtraItems:
		return "extra_items"
	}
	return "unknown"
}

type fieldCandidates struct {
	Field      Field
	Candidates []string
}

// Candidate substrings per canonical field, highest priority first. These
// mirror the header vocabulary seen across departmental bill workbooks.
var workOrderCandidates = []fieldCandidates{
	{FieldSerialNo, []string{"s.no", "serial", "sr.no", "no", "item no", "sl.no"}},
	{FieldDescription, []string{"description", "particulars", "item", "work", "details"}},
	{FieldUnit, []string{"unit", "units", "measurement", "measure"}},
	{FieldQuantity, []string{"quantity", "qty", "amount", "nos"}},
	{FieldRate, []string{"rate", "unit rate", "price", "cost"}},
	{FieldAmount, []string{"amount", "total", "value", "cost"}},
	{FieldRemark, []string{"remark", "remarks", "note", "comment"}},
}

var billQuantityCandidates = []fieldCandidates{
	{FieldSerialNo, []string{"s.no", "serial", "sr.no", "no", "item no", "sl.no"}},
	{FieldDescription, []string{"description", "particulars", "item", "work", "details", "item of work"}},
	{FieldUnit, []string{"unit", "units", "measurement", "measure"}},
	{FieldQuantity, []string{"quantity executed", "quantity", "qty executed", "qty", "executed qty"}},
	{FieldRate, []string{"rate", "unit rate", "price", "cost per unit"}},
	{FieldAmount, []string{"amount", "total amount", "value", "total cost"}},
	{FieldPrevQuantity, []string{"previous quantity", "prev qty", "cumulative qty", "upto date qty"}},
	{FieldRemark, []string{"remark", "remarks", "note", "comment"}},
}

var extraItemsCandidates = []fieldCandidates{
	{FieldSerialNo, []string{"s.no", "serial", "sr.no", "no", "item no"}},
	{FieldDescription, []string{"description", "particulars", "item", "work", "extra work"}},
	{FieldUnit, []string{"unit", "units", "measurement"}},
	{FieldQuantity, []string{"quantity", "qty", "executed qty"}},
	{FieldRate, []string{"rate", "unit rate", "approved rate", "price"}},
	{FieldAmount, []string{"amount", "total", "value"}},
	{FieldApprovalRef, []string{"approval", "reference", "sanction", "order"}},
	{FieldRemark, []string{"remark", "remarks", "justification"}},
}

func candidatesFor(kind SheetKind) []fieldCandidates {
	switch kind {
	case KindBillQuantity:
		return billQuantityCandidates
	case KindExtraItems:
		return extraItemsCandidates
	default:
		return workOrderCandidates
	}
}

// ColumnMapping binds canonical fields to columns of one sheet. Two fields may
// bind to the same column when their candidate substrings overlap; that is
// accepted rather than fought.
type ColumnMapping struct {
	cols    map[Field]int
	headers map[Field]string
}

// Col returns the 0-based column index bound to a field.
func (m ColumnMapping) Col(f Field) (int, bool) {
	i, ok := m.cols[f]
	return i, ok
}

// Header returns the actual header string a field was bound to.
func (m ColumnMapping) Header(f Field) (string, bool) {
	h, ok := m.headers[f]
	return h, ok
}

// Value returns the trimmed cell value of the field's column in row, or ""
// when the field is unmapped or the row is short.
func (m ColumnMapping) Value(row []string, f Field) string {
	i, ok := m.cols[f]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// MapColumns resolves the canonical fields of kind against the literal header
// row. For each field, candidates are scanned in order and each candidate is
// checked against every header for case-insensitive containment in either
// direction; the first hit binds the field.
func MapColumns(kind SheetKind, headerRow []string, sheet string, rep report.Reporter) ColumnMapping {
	norm := make([]string, len(headerRow))
	for i, h := range headerRow {
		norm[i] = strings.ToLower(strings.TrimSpace(h))
	}

	m := ColumnMapping{
		cols:    make(map[Field]int),
		headers: make(map[Field]string),
	}

	for _, fc := range candidatesFor(kind) {
		if col, ok := matchColumn(norm, fc.Candidates); ok {
			m.cols[fc.Field] = col
			m.headers[fc.Field] = strings.TrimSpace(headerRow[col])
			continue
		}
		rep.Warn(report.Warning{
			Stage:   "columns",
			Sheet:   sheet,
			Field:   string(fc.Field),
			Message: "no matching column header, using defaults",
		})
	}
	return m
}

func matchColumn(headers, candidates []string) (int, bool) {
	for _, cand := range candidates {
		for i, h := range headers {
			if h == "" {
				continue
			}
			if strings.Contains(h, cand) || strings.Contains(cand, h) {
				return i, true
			}
		}
	}
	return 0, false
}
