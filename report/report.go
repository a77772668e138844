// Package report collects the non-fatal warnings raised while a contract bill
// workbook is processed. Stages never log directly; they report to a
// caller-supplied Reporter so the caller decides what to do with the noise.
package report

import "fmt"

// Warning describes a single recoverable problem found during processing.
// Row is the 1-based data row the warning refers to, 0 when not row-scoped.
type Warning struct {
	Stage   string
	Sheet   string
	Row     int
	Field   string
	Message string
}

func (w Warning) String() string {
	s := w.Stage
	if w.Sheet != "" {
		s += " [" + w.Sheet + "]"
	}
	if w.Row > 0 {
		s += fmt.Sprintf(" row %d", w.Row)
	}
	if w.Field != "" {
		s += " " + w.Field
	}
	return s + ": " + w.Message
}

// Reporter receives warnings from pipeline stages.
type Reporter interface {
	Warn(w Warning)
}

// Collector is the standard Reporter. It keeps warnings in arrival order so
// the caller can show them after the run completes.
type Collector struct {
	warnings []Warning
}

func (c *Collector) Warn(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns every collected warning in the order it was raised.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Discard drops every warning. Useful in tests that only care about values.
type Discard struct{}

func (Discard) Warn(Warning) {}
