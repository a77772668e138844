package workbook

import (
	"strings"

	"contractbilling/report"
)

// Category is a logical sheet category in a contract bill workbook.
type Category string

const (
	CategoryTitle        Category = "title"
	CategoryWorkOrder    Category = "work_order"
	CategoryBillQuantity Category = "bill_quantity"
	CategoryExtraItems   Category = "extra_items"
	CategoryDeviation    Category = "deviation_statement"
	CategoryNoteSheet    Category = "note_sheet"
)

// categoryKeywords lists the candidate names for each category, highest
// priority first. Departments name these sheets inconsistently, so matching
// is deliberately loose.
var categoryKeywords = []struct {
	Category Category
	Keywords []string
}{
	{CategoryTitle, []string{"title", "cover", "front", "project", "header"}},
	{CategoryWorkOrder, []string{"work order", "work_order", "workorder", "wo", "order"}},
	{CategoryBillQuantity, []string{"bill quantity", "bill_quantity", "billquantity", "bq", "quantity", "bill"}},
	{CategoryExtraItems, []string{"extra items", "extra_items", "extraitems", "extra", "additional"}},
	{CategoryDeviation, []string{"deviation statement", "deviation_statement", "deviation"}},
	{CategoryNoteSheet, []string{"note sheet", "note_sheet", "notesheet", "notes", "note"}},
}

// requiredCategories must all resolve for a workbook to be processable.
var requiredCategories = []Category{CategoryTitle, CategoryWorkOrder, CategoryBillQuantity}

// Mapping is the resolved correspondence between logical categories and the
// workbook's actual sheet names.
type Mapping struct {
	Sheets  map[Category]string
	Missing []Category // categories that failed to resolve, extra items excluded
	Valid   bool       // false when any required category is missing
	Pattern string     // informational "old"/"new" layout heuristic
}

// Sheet returns the resolved sheet name for a category.
func (m Mapping) Sheet(c Category) (string, bool) {
	name, ok := m.Sheets[c]
	return name, ok
}

// ResolveSheets maps the workbook's sheet names onto logical categories.
// Categories are resolved independently; the same sheet may satisfy more than
// one category and no deduplication is attempted.
func ResolveSheets(sheetNames []string, rep report.Reporter) Mapping {
	m := Mapping{
		Sheets:  make(map[Category]string, len(categoryKeywords)),
		Valid:   true,
		Pattern: detectPattern(sheetNames),
	}

	for _, ck := range categoryKeywords {
		if name, ok := findSheetByKeywords(sheetNames, ck.Keywords); ok {
			m.Sheets[ck.Category] = name
			continue
		}
		if ck.Category == CategoryExtraItems {
			continue
		}
		m.Missing = append(m.Missing, ck.Category)
	}

	for _, c := range requiredCategories {
		if _, ok := m.Sheets[c]; !ok {
			m.Valid = false
		}
	}

	for _, c := range m.Missing {
		if !isRequired(c) {
			rep.Warn(report.Warning{
				Stage:   "resolve",
				Message: "optional sheet category " + string(c) + " not found",
			})
		}
	}
	if len(sheetNames) < 3 {
		rep.Warn(report.Warning{
			Stage:   "resolve",
			Message: "workbook has fewer sheets than expected",
		})
	}

	return m
}

func isRequired(c Category) bool {
	for _, r := range requiredCategories {
		if c == r {
			return true
		}
	}
	return false
}

// findSheetByKeywords tries, for each keyword in priority order: an exact
// case-insensitive match, then keyword-in-name containment, then the reverse.
// Containment never throws, so there is no fallback chain beyond these three.
func findSheetByKeywords(sheetNames, keywords []string) (string, bool) {
	for _, kw := range keywords {
		for _, name := range sheetNames {
			if strings.EqualFold(kw, name) {
				return name, true
			}
		}
	}
	for _, kw := range keywords {
		for _, name := range sheetNames {
			if strings.Contains(strings.ToLower(name), strings.ToLower(kw)) {
				return name, true
			}
		}
	}
	for _, name := range sheetNames {
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(kw), strings.ToLower(name)) {
				return name, true
			}
		}
	}
	return "", false
}

// Indicator keywords for the informal workbook layout classification. The
// result is recorded for diagnostics only and never changes behavior.
var (
	newPatternIndicators = []string{"title", "cover", "front", "project"}
	oldPatternIndicators = []string{"sheet1", "data", "main"}
)

func detectPattern(sheetNames []string) string {
	lower := make([]string, len(sheetNames))
	for i, n := range sheetNames {
		lower[i] = strings.ToLower(n)
	}

	score := func(indicators []string) int {
		n := 0
		for _, ind := range indicators {
			for _, name := range lower {
				if strings.Contains(name, ind) {
					n++
					break
				}
			}
		}
		return n
	}

	newScore := score(newPatternIndicators)
	oldScore := score(oldPatternIndicators)

	switch {
	case len(sheetNames) > 3 && newScore > 0:
		return "new"
	case oldScore > newScore:
		return "old"
	default:
		return "new"
	}
}
