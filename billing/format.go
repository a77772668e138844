package billing

import (
	"fmt"
	"strings"
)

// FormatINR formats an amount in Indian Rupee notation with the Indian
// numbering system: after the rightmost 3 digits, digits group in pairs
// (₹1,23,45,678.90). Always two decimal places.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	intPart, decPart, _ := strings.Cut(raw, ".")

	out := "₹" + groupIndian(intPart) + "." + decPart
	if negative {
		out = "-" + out
	}
	return out
}

// groupIndian inserts commas using the Indian system: the last 3 digits stay
// together, every 2 digits group after that.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	out := digits[n-3:]
	rest := digits[:n-3]
	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		out = rest + "," + out
	}
	return out
}
