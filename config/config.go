// Package config loads the YAML run configuration used by the CLI: the GST
// rate override and the optional tender premium. Neither value can be derived
// from the workbook itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"contractbilling/billing"
)

// Config is the on-disk run configuration.
type Config struct {
	GSTRate       float64       `yaml:"gst_rate"`
	TenderPremium TenderPremium `yaml:"tender_premium"`
}

// TenderPremium is the contractually agreed percentage markup or rebate on
// the base amount. Percent may be negative.
type TenderPremium struct {
	Enabled bool    `yaml:"enabled"`
	Percent float64 `yaml:"percent"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{GSTRate: billing.DefaultGSTRate}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configured percentages are sane.
func (c *Config) Validate() error {
	if c.GSTRate < 0 || c.GSTRate > 100 {
		return fmt.Errorf("gst_rate must be between 0 and 100, got %v", c.GSTRate)
	}
	if c.TenderPremium.Enabled && (c.TenderPremium.Percent < -100 || c.TenderPremium.Percent > 100) {
		return fmt.Errorf("tender_premium.percent must be between -100 and 100, got %v", c.TenderPremium.Percent)
	}
	return nil
}

// FinancialOptions converts the configuration into aggregator options.
func (c *Config) FinancialOptions() billing.Options {
	return billing.Options{
		GSTRate:        c.GSTRate,
		PremiumPercent: c.TenderPremium.Percent,
		HasPremium:     c.TenderPremium.Enabled,
	}
}
