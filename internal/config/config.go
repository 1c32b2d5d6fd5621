package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level bookkeep.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Tax      TaxConfig      `yaml:"tax"`
	Loans    LoanConfig     `yaml:"loans"`
	Files    FilesConfig    `yaml:"files"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// TaxConfig holds the flat tax-detection rates. These are approximate
// business rules, not statutory logic, and are deliberately tunable.
type TaxConfig struct {
	VATRate         decimal.Decimal `yaml:"vat_rate"`
	WHTServicesRate decimal.Decimal `yaml:"wht_services_rate"`
	WHTGoodsRate    decimal.Decimal `yaml:"wht_goods_rate"`
}

// LoanConfig controls how a repayment is split between interest and
// principal when the description carries no schedule information.
type LoanConfig struct {
	InterestShare decimal.Decimal `yaml:"interest_share"`
}

// FilesConfig locates the engine state and audit log relative to the
// project root.
type FilesConfig struct {
	State    string `yaml:"state"`
	AuditLog string `yaml:"audit_log"`
}

// Load reads a bookkeep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "NGN",
		},
		Tax: TaxConfig{
			VATRate:         decimal.RequireFromString("0.075"),
			WHTServicesRate: decimal.RequireFromString("0.10"),
			WHTGoodsRate:    decimal.RequireFromString("0.05"),
		},
		Loans: LoanConfig{
			InterestShare: decimal.RequireFromString("0.20"),
		},
		Files: FilesConfig{
			State:    "ledger-state.json",
			AuditLog: "logs/audit.csv",
		},
	}
}
