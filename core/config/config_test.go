package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "buyer1", cfg.Server.Buyer)
	assert.Equal(t, "html", cfg.Server.Views)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "seller_data.toml", cfg.Catalog.Path)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "marketplace_data.db", cfg.Database.Name)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_BUYER", "alice")
	t.Setenv("CATALOG_PATH", "groups/red/store_data.toml")
	t.Setenv("DATABASE_PORT", "3307")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Server.Buyer)
	assert.Equal(t, "groups/red/store_data.toml", cfg.Catalog.Path)
	assert.Equal(t, 3307, cfg.Database.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\nSTORAGE_USE_SSL=true\n"), 0o644)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("STORAGE_USE_SSL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"Views", "SERVER_VIEWS", "xml", `invalid server.views "xml"`},
		{"Source", "CATALOG_SOURCE", "ftp", `invalid catalog.source "ftp"`},
		{"Driver", "DATABASE_DRIVER", "oracle", `invalid database.driver "oracle"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			cfg, err := LoadConfig(t.TempDir())
			assert.EqualError(t, err, tt.want)
			assert.Nil(t, cfg)
		})
	}
}
