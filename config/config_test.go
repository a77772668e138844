package config

import (
	"os"
	"path/filepath"
	"testing"

	"contractbilling/billing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.GSTRate != billing.DefaultGSTRate {
		t.Errorf("GSTRate = %v, want %v", cfg.GSTRate, billing.DefaultGSTRate)
	}
	if cfg.TenderPremium.Enabled {
		t.Error("premium enabled by default")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
gst_rate: 12
tender_premium:
  enabled: true
  percent: -4.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GSTRate != 12 {
		t.Errorf("GSTRate = %v, want 12", cfg.GSTRate)
	}
	if !cfg.TenderPremium.Enabled || cfg.TenderPremium.Percent != -4.5 {
		t.Errorf("TenderPremium = %+v", cfg.TenderPremium)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tender_premium:\n  enabled: true\n  percent: 5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GSTRate != billing.DefaultGSTRate {
		t.Errorf("GSTRate = %v, want default %v", cfg.GSTRate, billing.DefaultGSTRate)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "gst_rate: [not a number\n")
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid gst rate", func(t *testing.T) {
		path := writeConfig(t, "gst_rate: 150\n")
		if _, err := Load(path); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *Default(), false},
		{"zero gst", Config{GSTRate: 0}, false},
		{"negative gst", Config{GSTRate: -1}, true},
		{"gst over 100", Config{GSTRate: 101}, true},
		{"premium out of range", Config{GSTRate: 18, TenderPremium: TenderPremium{Enabled: true, Percent: 150}}, true},
		{"disabled premium ignored", Config{GSTRate: 18, TenderPremium: TenderPremium{Enabled: false, Percent: 150}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFinancialOptions(t *testing.T) {
	cfg := &Config{
		GSTRate:       12,
		TenderPremium: TenderPremium{Enabled: true, Percent: 5},
	}

	got := cfg.FinancialOptions()
	want := billing.Options{GSTRate: 12, PremiumPercent: 5, HasPremium: true}
	if got != want {
		t.Errorf("FinancialOptions() = %+v, want %+v", got, want)
	}
}
