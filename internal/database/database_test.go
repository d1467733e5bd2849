package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskboard/internal/config"
	"github.com/yukikurage/taskboard/internal/models"
)

func TestConnectAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "taskboard.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.StateBlob{}))
	assert.True(t, db.Migrator().HasColumn(&models.StateBlob{}, "blob_key"))

	require.NoError(t, Migrate(db), "migrating twice is harmless")
}

func TestDialector(t *testing.T) {
	cases := []struct {
		driver string
		name   string
	}{
		{config.DriverSQLite, "sqlite"},
		{config.DriverMySQL, "mysql"},
		{config.DriverPostgres, "postgres"},
	}
	for _, tc := range cases {
		t.Run(tc.driver, func(t *testing.T) {
			d, err := Dialector(&config.Config{DBDriver: tc.driver, DBPath: ":memory:"})
			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}

	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
