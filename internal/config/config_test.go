package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PORT", "STORE_BACKEND", "STATE_KEY", "SESSION_BACKEND", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, BackendDatabase, cfg.StoreBackend)
	assert.Equal(t, "taskboard-app-data", cfg.StateKey)
	assert.Equal(t, SessionCookie, cfg.SessionBackend)
	assert.Equal(t, "8080", cfg.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DatabasePort())
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}

func TestLoadFile_OverlaysPresentFields(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("STATE_KEY", "")
	path := filepath.Join(t.TempDir(), "taskboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/boards.db\nlog_level: debug\n"), 0o644))

	cfg := Load()
	require.NoError(t, LoadFile(path, cfg))

	assert.Equal(t, "/tmp/boards.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "taskboard-app-data", cfg.StateKey, "fields missing from the file keep their value")
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := Load()

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [unterminated"), 0o644))
	assert.Error(t, LoadFile(path, cfg))
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBDriver: "oracle", StoreBackend: "s3", SessionBackend: SessionRedis}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown DB_DRIVER "oracle"`)
	assert.Contains(t, err.Error(), `unknown STORE_BACKEND "s3"`)
	assert.NotContains(t, err.Error(), "SESSION_BACKEND")
}
