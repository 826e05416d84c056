package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Trendy Gadgets")
	cfg.Business.Address = "13, North Street, Chennai, India"
	cfg.Business.Phone = "+91 9876543210"
	cfg.Business.Email = "info@trendy.com"

	path := filepath.Join(t.TempDir(), "tillbook.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.Equal(t, cfg.Business.Address, got.Business.Address)
	assert.Equal(t, cfg.Business.Phone, got.Business.Phone)
	assert.Equal(t, cfg.Business.Email, got.Business.Email)
	assert.Equal(t, cfg.Business.Currency, got.Business.Currency)
	assert.Equal(t, cfg.Paths.Database, got.Paths.Database)
	assert.Equal(t, cfg.Paths.Exports, got.Paths.Exports)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Shop")

	assert.Equal(t, "My Shop", cfg.Business.Name)
	assert.Equal(t, "Rs.", cfg.Business.Currency)
	assert.Equal(t, "billing.db", cfg.Paths.Database)
	assert.Equal(t, "exports", cfg.Paths.Exports)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Shop")
	path := filepath.Join(t.TempDir(), "tillbook.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Shop")
	assert.Contains(t, contents, "database: billing.db")
	assert.Contains(t, contents, "exports: exports")
}
