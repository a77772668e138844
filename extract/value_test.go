package extract

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		def    float64
		want   float64
		wantOK bool
	}{
		{"plain integer", "1200", 0, 1200, true},
		{"decimal", "55.50", 0, 55.5, true},
		{"negative", "-12.5", 0, -12.5, true},
		{"thousands separators", "1,23,456.78", 0, 123456.78, true},
		{"rupee symbol", "₹1,500", 0, 1500, true},
		{"rs prefix", "Rs. 250.00", 0, 250, true},
		{"percentage", "18%", 0, 0.18, true},
		{"embedded unit", "1200 cum", 0, 1200, true},
		{"blank is clean zero", "", 0, 0, true},
		{"nil word", "nil", 0, 0, true},
		{"dash", "-", 0, 0, true},
		{"not applicable", "N/A", 0, 0, true},
		{"garbage", "as per site", 0, 0, false},
		{"garbage keeps default", "awaiting sanction", 7, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.raw, tt.def)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"trims and collapses", "  Earthwork   in\texcavation  ", "Earthwork in excavation"},
		{"strips control chars", "Cement\x00 bags", "Cement bags"},
		{"already clean", "PCC 1:2:4", "PCC 1:2:4"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.raw); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"half rounds up", 0.125, 0.13},
		{"below half rounds down", 2.004, 2.0},
		{"exact", 150.25, 150.25},
		{"negative half away from zero", -0.125, -0.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
