package extract

import (
	"testing"

	"contractbilling/report"
)

func TestMapColumns_StandardHeader(t *testing.T) {
	header := []string{"S.No", "Description of Item", "Unit", "Quantity", "Rate", "Amount", "Remarks"}
	m := MapColumns(KindBillQuantity, header, "Bill Quantity", report.Discard{})

	want := map[Field]int{
		FieldSerialNo:    0,
		FieldDescription: 1,
		FieldUnit:        2,
		FieldQuantity:    3,
		FieldRate:        4,
		FieldAmount:      5,
		FieldRemark:      6,
	}
	for field, col := range want {
		if got, ok := m.Col(field); !ok || got != col {
			t.Errorf("Col(%s) = %d, %v; want %d", field, got, ok, col)
		}
	}
}

func TestMapColumns_Variants(t *testing.T) {
	tests := []struct {
		name   string
		kind   SheetKind
		header []string
		field  Field
		want   int
	}{
		{"particulars as description", KindWorkOrder, []string{"No", "Particulars"}, FieldDescription, 1},
		{"qty abbreviation", KindBillQuantity, []string{"Item", "Qty Executed"}, FieldQuantity, 1},
		{"rate with unit", KindWorkOrder, []string{"Desc", "Unit Rate (Rs)"}, FieldRate, 1},
		{"approval reference", KindExtraItems, []string{"Item", "Sanction Ref"}, FieldApprovalRef, 1},
		{"header inside candidate", KindWorkOrder, []string{"Partic", "Qty"}, FieldDescription, 0},
		{"case and padding", KindWorkOrder, []string{"  DESCRIPTION  "}, FieldDescription, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MapColumns(tt.kind, tt.header, "sheet", report.Discard{})
			if got, ok := m.Col(tt.field); !ok || got != tt.want {
				t.Errorf("Col(%s) = %d, %v; want %d", tt.field, got, ok, tt.want)
			}
		})
	}
}

func TestMapColumns_UnmappedFieldWarns(t *testing.T) {
	collector := &report.Collector{}
	m := MapColumns(KindWorkOrder, []string{"Description", "Qty", "Rate"}, "Work Order", collector)

	if _, ok := m.Col(FieldRemark); ok {
		t.Error("remark should be unmapped")
	}
	found := false
	for _, w := range collector.Warnings() {
		if w.Field == string(FieldRemark) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning for the unmapped remark field, got %v", collector.Warnings())
	}
}

func TestMapColumns_DuplicateBindingAccepted(t *testing.T) {
	// "Total Cost" satisfies both rate ("cost") and amount ("total") candidate
	// lists on a work order sheet; both fields bind to the same column.
	header := []string{"Description", "Total Cost"}
	m := MapColumns(KindWorkOrder, header, "Work Order", report.Discard{})

	rateCol, rateOK := m.Col(FieldRate)
	amountCol, amountOK := m.Col(FieldAmount)
	if !rateOK || !amountOK {
		t.Fatalf("rate mapped=%v amount mapped=%v, want both", rateOK, amountOK)
	}
	if rateCol != amountCol {
		t.Errorf("rate col %d != amount col %d, expected shared binding", rateCol, amountCol)
	}
}

func TestColumnMapping_Value(t *testing.T) {
	m := MapColumns(KindWorkOrder, []string{"Description", "Qty"}, "Work Order", report.Discard{})

	row := []string{" Earthwork ", "10"}
	if got := m.Value(row, FieldDescription); got != "Earthwork" {
		t.Errorf("Value(description) = %q", got)
	}
	// Short row: quantity column exists but the row has no cell there.
	if got := m.Value([]string{"Earthwork"}, FieldQuantity); got != "" {
		t.Errorf("Value on short row = %q, want empty", got)
	}
	if got := m.Value(row, FieldRemark); got != "" {
		t.Errorf("Value(unmapped) = %q, want empty", got)
	}
}
