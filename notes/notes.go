// Package notes generates the numbered compliance note sheet that routes a
// contract bill through the approval hierarchy.
package notes

import (
	"fmt"
	"strings"

	"contractbilling/billing"
	"contractbilling/extract"
)

// NoteSet is the ordered compliance narrative: serially numbered notes
// followed by the fixed, unnumbered signature block.
type NoteSet struct {
	Notes     []string
	Signature []string
}

// Render joins the full note sheet into one newline-separated text blob.
// Nothing downstream reorders or filters it.
func (n NoteSet) Render() string {
	lines := make([]string, 0, len(n.Notes)+len(n.Signature)+1)
	lines = append(lines, n.Notes...)
	if len(n.Signature) > 0 {
		lines = append(lines, "")
		lines = append(lines, n.Signature...)
	}
	return strings.Join(lines, "\n")
}

var signatureBlock = []string{
	"Divisional Accountant",
	"Executive Engineer",
}

// Delegation thresholds: savings and excess up to 5% over the work order
// amount pass at divisional level, anything beyond needs the Superintending
// Engineer.
const (
	deviationFloor   = 90.0
	excessCeiling    = 105.0
	extraItemsCutoff = 5.0
)

// Generate builds the note sequence from the computed totals, the work order
// baseline and the billed amount. Percentages are guarded against a zero
// denominator, so a zero work order amount yields 0%, never a panic.
func Generate(t billing.Totals, workOrderAmount, billAmount float64, extraItems []extract.LineItem) NoteSet {
	var b builder

	pct := percentOf(billAmount, workOrderAmount)
	b.add("The work done amounts to %.2f%% of the work order amount.", pct)

	switch {
	case pct < deviationFloor:
		b.add("The work done is less than 90%% of the work order amount. " +
			"A deviation statement is required; the saving falls within the approval jurisdiction of this office.")
	case pct <= excessCeiling:
		if pct > 100 {
			b.add("The work done exceeds the work order amount by not more than 5%%, " +
				"which falls within the approval jurisdiction of this office.")
		}
	default:
		b.add("The work done exceeds the work order amount by more than 5%%. " +
			"Approval of the Superintending Engineer is required.")
	}

	if len(extraItems) > 0 {
		extraPct := percentOf(t.ExtraItemsTotal, workOrderAmount)
		if extraPct > extraItemsCutoff {
			b.add("Extra items amounting to %s (%.2f%% of the work order amount) exceed 5%% "+
				"and require approval of the Superintending Engineer.",
				billing.FormatINR(t.ExtraItemsTotal), extraPct)
		} else {
			b.add("Extra items amounting to %s (%.2f%% of the work order amount) are within 5%% "+
				"and fall under the approval jurisdiction of this office.",
				billing.FormatINR(t.ExtraItemsTotal), extraPct)
		}
	}

	b.add("Quality control test reports are attached with the bill.")
	b.add("The hand over statement is attached with the bill.")
	b.add("Submitted for perusal and decision.")

	return NoteSet{Notes: b.notes, Signature: signatureBlock}
}

func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// builder numbers notes as they are appended, starting at 1.
type builder struct {
	notes []string
}

func (b *builder) add(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	b.notes = append(b.notes, fmt.Sprintf("%d. %s", len(b.notes)+1, text))
}
