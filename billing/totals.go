// Package billing computes the financial summary of an extracted contract
// bill: category totals, tender premium, GST and the net payable amount.
package billing

import "contractbilling/extract"

// DefaultGSTRate is the standard GST rate applied when no override is given.
const DefaultGSTRate = 18.0

// Options carries run-level financial configuration. The tender premium is an
// external contractual figure, never derived from the extracted rows.
type Options struct {
	GSTRate        float64 // zero means DefaultGSTRate
	PremiumPercent float64 // tender premium, may be negative for a rebate
	HasPremium     bool
}

// Totals is the computed financial summary of one bill run. Every field is
// rounded to two decimals.
type Totals struct {
	WorkOrderTotal    float64
	BillQuantityTotal float64
	ExtraItemsTotal   float64
	GrandTotal        float64
	GSTRate           float64
	GSTAmount         float64
	PremiumAmount     float64
	TotalWithGST      float64
	NetPayable        float64
}

// Aggregate runs the ordered totals pipeline. The step order is fixed: the
// tender premium lands on the grand total before GST, so tax is always charged
// on the post-premium amount.
func Aggregate(workOrder, billQuantity, extraItems []extract.LineItem, opts Options) Totals {
	var t Totals

	t.WorkOrderTotal = sumAmounts(workOrder)
	t.BillQuantityTotal = sumAmounts(billQuantity)
	t.ExtraItemsTotal = sumAmounts(extraItems)
	t.GrandTotal = t.BillQuantityTotal + t.ExtraItemsTotal

	if opts.HasPremium {
		t.PremiumAmount = t.GrandTotal * opts.PremiumPercent / 100
		t.GrandTotal += t.PremiumAmount
	}

	t.GSTRate = opts.GSTRate
	if t.GSTRate == 0 {
		t.GSTRate = DefaultGSTRate
	}
	t.GSTAmount = t.GrandTotal * t.GSTRate / 100
	t.TotalWithGST = t.GrandTotal + t.GSTAmount
	t.NetPayable = t.TotalWithGST

	t.WorkOrderTotal = extract.Round2(t.WorkOrderTotal)
	t.BillQuantityTotal = extract.Round2(t.BillQuantityTotal)
	t.ExtraItemsTotal = extract.Round2(t.ExtraItemsTotal)
	t.GrandTotal = extract.Round2(t.GrandTotal)
	t.GSTAmount = extract.Round2(t.GSTAmount)
	t.PremiumAmount = extract.Round2(t.PremiumAmount)
	t.TotalWithGST = extract.Round2(t.TotalWithGST)
	t.NetPayable = extract.Round2(t.NetPayable)

	return t
}

func sumAmounts(items []extract.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Amount
	}
	return sum
}
