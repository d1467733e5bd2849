package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/taskboard/internal/config"
	"github.com/yukikurage/taskboard/internal/models"
)

func TestNewLogger(t *testing.T) {
	assert.Equal(t, log.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, log.InfoLevel, NewLogger("chatty").GetLevel())
}

func TestOpenGateway_Database(t *testing.T) {
	cfg := &config.Config{
		DBDriver:     config.DriverSQLite,
		DBPath:       filepath.Join(t.TempDir(), "taskboard.db"),
		StoreBackend: config.BackendDatabase,
		StateKey:     "test-state",
	}
	ctx := context.Background()

	gw, closeFn, err := OpenGateway(ctx, cfg, NewLogger("error"))
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, "test-state", gw.Key())
	gw.Save(ctx, models.NewAppState())
	_, ok := gw.Load(ctx)
	assert.True(t, ok)
}

func TestOpenGateway_Redis(t *testing.T) {
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer m.Close()

	cfg := &config.Config{
		RedisHost:    m.Host(),
		RedisPort:    m.Port(),
		StoreBackend: config.BackendRedis,
	}
	ctx := context.Background()

	gw, closeFn, err := OpenGateway(ctx, cfg, NewLogger("error"))
	require.NoError(t, err)
	defer closeFn()

	gw.Save(ctx, models.NewAppState())
	assert.True(t, m.Exists("taskboard-app-data"))
}

func TestOpenRepository_Errors(t *testing.T) {
	_, _, err := OpenRepository(context.Background(), &config.Config{StoreBackend: "s3"})
	assert.Error(t, err)

	m, err := miniredis.Run()
	require.NoError(t, err)
	cfg := &config.Config{RedisHost: m.Host(), RedisPort: m.Port(), StoreBackend: config.BackendRedis}
	m.Close()

	_, _, err = OpenRepository(context.Background(), cfg)
	assert.Error(t, err)
}
