package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("Acme Trading")

	assert.Equal(t, "Acme Trading", cfg.Business.Name)
	assert.Equal(t, "NGN", cfg.Business.Currency)
	assert.True(t, cfg.Tax.VATRate.Equal(decimal.RequireFromString("0.075")))
	assert.True(t, cfg.Tax.WHTServicesRate.Equal(decimal.RequireFromString("0.10")))
	assert.True(t, cfg.Tax.WHTGoodsRate.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, cfg.Loans.InterestShare.Equal(decimal.RequireFromString("0.20")))
	assert.Equal(t, "ledger-state.json", cfg.Files.State)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookkeep.yaml")

	cfg := Default("Acme Trading")
	cfg.Tax.VATRate = decimal.RequireFromString("0.05")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Trading", loaded.Business.Name)
	assert.True(t, loaded.Tax.VATRate.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, loaded.Loans.InterestShare.Equal(cfg.Loans.InterestShare))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookkeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("business: [not: closed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
