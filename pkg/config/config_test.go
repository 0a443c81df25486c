package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PENNYWISE_DB_PATH", "")
	t.Setenv("PENNYWISE_RULES_PATH", "")
	t.Setenv("PENNYWISE_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Ledger.DBPath)
	assert.Empty(t, cfg.Ledger.RulesPath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PENNYWISE_DB_PATH", "/tmp/test.db")
	t.Setenv("PENNYWISE_RULES_PATH", "/tmp/rules.yaml")
	t.Setenv("PENNYWISE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.Ledger.DBPath)
	assert.Equal(t, "/tmp/rules.yaml", cfg.Ledger.RulesPath)
	assert.Equal(t, "debug", cfg.Log.Level)
}
