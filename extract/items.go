// Package extract turns the raw cell grids of a resolved workbook into typed
// line items and project identification fields.
package extract

import (
	"strconv"

	"contractbilling/report"
)

// LineItem is one row of planned, executed or extra work. Amount always equals
// quantity times rate rounded to two decimals, except for placeholder rows
// where every numeric field is forced to zero.
type LineItem struct {
	SerialNo    string
	Description string
	Unit        string
	Quantity    float64
	Rate        float64
	Amount      float64
	Remark      string
	ApprovalRef string
}

// Items converts a sheet's rows into line items. The first row is the header
// row; output preserves the input row order. A bad cell never aborts the
// sheet: the offending field falls back to its default and a warning is
// recorded.
func Items(kind SheetKind, sheet string, rows [][]string, rep report.Reporter) []LineItem {
	if len(rows) <= 1 {
		rep.Warn(report.Warning{
			Stage:   "extract",
			Sheet:   sheet,
			Message: "sheet has no data rows",
		})
		return nil
	}

	cm := MapColumns(kind, rows[0], sheet, rep)
	_, amountMapped := cm.Col(FieldAmount)

	var items []LineItem
	for i, row := range rows[1:] {
		rowNo := i + 1

		desc := CleanText(cm.Value(row, FieldDescription))
		if len(desc) < 3 {
			continue
		}

		qtyRaw := cm.Value(row, FieldQuantity)
		qty, ok := ParseNumber(qtyRaw, 0)
		if !ok {
			rep.Warn(report.Warning{
				Stage:   "extract",
				Sheet:   sheet,
				Row:     rowNo,
				Field:   string(FieldQuantity),
				Message: "not a number: " + qtyRaw,
			})
		}
		if kind != KindWorkOrder && qty <= 0 {
			continue
		}

		serial := CleanText(cm.Value(row, FieldSerialNo))
		if serial == "" {
			serial = strconv.Itoa(rowNo)
		}

		// A row whose rate cell is blank, non-numeric or zero is a
		// bill-of-quantities placeholder: keep the serial and description,
		// zero everything else.
		rateRaw := cm.Value(row, FieldRate)
		rate, rateOK := ParseNumber(rateRaw, 0)
		if rateRaw == "" || !rateOK || rate == 0 {
			items = append(items, LineItem{SerialNo: serial, Description: desc})
			continue
		}

		item := LineItem{
			SerialNo:    serial,
			Description: desc,
			Unit:        CleanText(cm.Value(row, FieldUnit)),
			Quantity:    Round2(qty),
			Rate:        Round2(rate),
			Remark:      CleanText(cm.Value(row, FieldRemark)),
		}
		if kind == KindExtraItems {
			item.ApprovalRef = CleanText(cm.Value(row, FieldApprovalRef))
		}

		amount := qty * rate
		if amountMapped {
			raw := cm.Value(row, FieldAmount)
			v, ok := ParseNumber(raw, 0)
			if !ok {
				rep.Warn(report.Warning{
					Stage:   "extract",
					Sheet:   sheet,
					Row:     rowNo,
					Field:   string(FieldAmount),
					Message: "not a number: " + raw,
				})
			}
			if v > 0 {
				amount = v
			}
		}
		item.Amount = Round2(amount)

		items = append(items, item)
	}
	return items
}
