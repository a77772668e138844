package extract

import (
	"strings"
	"time"
)

// ProjectInfo holds the free-form identification fields read off the Title
// sheet. All fields are strings and may be empty; nothing downstream computes
// on them.
type ProjectInfo struct {
	ProjectName    string
	ContractorName string
	AgreementNo    string
	WorkOrderNo    string
	Location       string
	EstimatedCost  string
	StartDate      string
	CompletionDate string
}

// Title sheets are label/value pairs: the label somewhere in column A, the
// value in column B. Only the top of the sheet is scanned.
const titleScanRows = 30

type titleField struct {
	keywords []string
	isDate   bool
	assign   func(*ProjectInfo, string)
}

var titleFields = []titleField{
	{[]string{"project", "project name", "work name", "name of work", "scheme"}, false,
		func(p *ProjectInfo, v string) { p.ProjectName = v }},
	{[]string{"contractor", "contractor name", "agency", "firm", "company"}, false,
		func(p *ProjectInfo, v string) { p.ContractorName = v }},
	{[]string{"agreement", "agreement no", "agreement number", "contract no"}, false,
		func(p *ProjectInfo, v string) { p.AgreementNo = v }},
	{[]string{"work order", "work order no", "wo no", "order no"}, false,
		func(p *ProjectInfo, v string) { p.WorkOrderNo = v }},
	{[]string{"location", "site", "place", "district"}, false,
		func(p *ProjectInfo, v string) { p.Location = v }},
	{[]string{"estimated cost", "estimate", "cost", "amount"}, false,
		func(p *ProjectInfo, v string) { p.EstimatedCost = v }},
	{[]string{"start date", "commencement", "begin date"}, true,
		func(p *ProjectInfo, v string) { p.StartDate = v }},
	{[]string{"completion date", "end date", "target date"}, true,
		func(p *ProjectInfo, v string) { p.CompletionDate = v }},
}

// Title extracts project identification fields from the Title sheet rows.
// Each row binds at most one field; the first value found for a field wins.
func Title(rows [][]string) ProjectInfo {
	var info ProjectInfo
	bound := make(map[int]bool, len(titleFields))

	for r, row := range rows {
		if r >= titleScanRows {
			break
		}
		if len(row) < 2 {
			continue
		}
		label := strings.ToLower(CleanText(row[0]))
		value := CleanText(row[1])
		if label == "" || value == "" {
			continue
		}

	fields:
		for i, f := range titleFields {
			if bound[i] {
				continue
			}
			for _, kw := range f.keywords {
				if strings.Contains(label, kw) {
					if f.isDate {
						value = normalizeDate(value)
					}
					f.assign(&info, value)
					bound[i] = true
					break fields
				}
			}
		}
	}
	return info
}

// dateLayouts are the formats excelize commonly renders date cells in, plus
// the hand-typed ones that show up in title sheets.
var dateLayouts = []string{
	"01-02-06",
	"1/2/06",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"January 2, 2006",
}

// normalizeDate renders recognizable dates as dd/mm/yyyy and leaves anything
// else untouched.
func normalizeDate(v string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return v
}
