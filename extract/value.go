package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// zeroWords are cell values that departments use to mean "nothing here".
// They convert to the default cleanly, without a warning.
var zeroWords = map[string]bool{
	"":      true,
	"above": true,
	"n/a":   true,
	"na":    true,
	"nil":   true,
	"-":     true,
	"null":  true,
	"none":  true,
	"tbc":   true,
	"tbd":   true,
}

var currencyMarkers = []string{"₹", "$", "€", "£", "¥", "Rs.", "Rs", "INR"}

var numberPattern = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// ParseNumber converts a raw cell value to a float64, tolerating currency
// symbols, thousands separators, a percentage suffix and stray surrounding
// text. ok is false only when nothing numeric could be recovered, in which
// case def is returned.
func ParseNumber(raw string, def float64) (v float64, ok bool) {
	s := strings.TrimSpace(raw)
	if zeroWords[strings.ToLower(s)] {
		return def, true
	}

	for _, marker := range currencyMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Cells like "1200 cum" or "rate 55.50" still carry a usable number.
		match := numberPattern.FindString(s)
		if match == "" {
			return def, false
		}
		v, err = strconv.ParseFloat(match, 64)
		if err != nil {
			return def, false
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def, false
	}
	if percent {
		v /= 100
	}
	return v, true
}

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	controlChars = regexp.MustCompile("[\x00-\x1f\x7f]")
)

// CleanText collapses whitespace runs and strips control characters.
func CleanText(raw string) string {
	s := strings.TrimSpace(raw)
	s = spaceRun.ReplaceAllString(s, " ")
	return controlChars.ReplaceAllString(s, "")
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
