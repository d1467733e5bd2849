package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/taskboard/internal/engine"
	"github.com/yukikurage/taskboard/internal/models"
	"github.com/yukikurage/taskboard/internal/repository"
)

type failingRepo struct{ err error }

func (r failingRepo) Get(context.Context, string) ([]byte, error) { return nil, r.err }
func (r failingRepo) Put(context.Context, string, []byte) error   { return r.err }
func (r failingRepo) Delete(context.Context, string) error        { return r.err }

func sampleState(t *testing.T) models.AppState {
	t.Helper()
	e := engine.New(engine.WithClock(func() time.Time {
		return time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)
	}))

	s, b, err := e.CreateBoard(models.NewAppState(), "Roadmap", "Q4", "alice")
	require.NoError(t, err)
	s, todo, err := e.CreateColumn(s, "Todo", b.ID)
	require.NoError(t, err)
	s, done, err := e.CreateColumn(s, "Done", b.ID)
	require.NoError(t, err)
	s, _, err = e.CreateTask(s, engine.NewTask{
		Title: "Write Report", Priority: models.PriorityHigh, ColumnID: todo.ID,
		DueDate: civilDate(2026, 10, 20),
	})
	require.NoError(t, err)
	s, tk, err := e.CreateTask(s, engine.NewTask{
		Title: "Ship", Description: "v1", CreatedBy: "bob", Priority: models.PriorityLow, ColumnID: todo.ID,
		DueDate: civilDate(2026, 11, 1),
	})
	require.NoError(t, err)
	s, err = e.MoveTask(s, tk.ID, done.ID, 0)
	require.NoError(t, err)
	s, err = e.SetCurrentBoard(s, &b.ID)
	require.NoError(t, err)
	return s
}

func newSQLiteRepo(t *testing.T) repository.BlobRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StateBlob{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewBlobRepository(db)
}

func newRedisRepo(t *testing.T) repository.BlobRepository {
	t.Helper()
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)
	return repository.NewRedisBlobRepository(redis.NewClient(&redis.Options{Addr: m.Addr()}))
}

func TestGateway_RoundTrip(t *testing.T) {
	repos := map[string]func(*testing.T) repository.BlobRepository{
		"gorm":  newSQLiteRepo,
		"redis": newRedisRepo,
	}
	for name, newRepo := range repos {
		t.Run(name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			g := NewGateway(newRepo(t), "", logger)
			ctx := context.Background()
			want := sampleState(t)

			_, ok := g.Load(ctx)
			assert.False(t, ok)

			g.Save(ctx, want)
			got, ok := g.Load(ctx)
			require.True(t, ok)
			assert.Equal(t, want, got)
			require.NoError(t, engine.CheckInvariants(got))
		})
	}
}

func TestGateway_EmptyStateRoundTrip(t *testing.T) {
	logger, _ := test.NewNullLogger()
	g := NewGateway(newSQLiteRepo(t), "", logger)
	ctx := context.Background()

	g.Save(ctx, models.NewAppState())
	got, ok := g.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, models.NewAppState(), got)
}

func TestGateway_UsesFixedKey(t *testing.T) {
	logger, _ := test.NewNullLogger()
	repo := newSQLiteRepo(t)
	g := NewGateway(repo, "", logger)
	assert.Equal(t, DefaultKey, g.Key())

	g.Save(context.Background(), models.NewAppState())
	data, err := repo.Get(context.Background(), "taskboard-app-data")
	require.NoError(t, err)
	assert.JSONEq(t, `{"boards":[],"columns":[],"tasks":[],"currentBoardId":null}`, string(data))
}

func TestGateway_MalformedBlobIsTreatedAsAbsent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := newSQLiteRepo(t)
	g := NewGateway(repo, "", logger)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, DefaultKey, []byte(`{"boards": [`)))

	_, ok := g.Load(ctx)
	assert.False(t, ok)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)

	s := g.LoadOrNew(ctx)
	assert.Equal(t, models.NewAppState(), s)
}

func TestGateway_NullCollectionsAreNormalized(t *testing.T) {
	logger, _ := test.NewNullLogger()
	repo := newSQLiteRepo(t)
	g := NewGateway(repo, "", logger)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, DefaultKey, []byte(`{"boards":[{"id":"b1","title":"A","columnIds":null}]}`)))

	s, ok := g.Load(ctx)
	require.True(t, ok)
	assert.NotNil(t, s.Columns)
	assert.NotNil(t, s.Tasks)
	require.Len(t, s.Boards, 1)
	assert.Equal(t, []string{}, s.Boards[0].ColumnIDs)
	require.NoError(t, engine.CheckInvariants(s))
}

func TestGateway_SaveFailureIsLoggedNotReturned(t *testing.T) {
	logger, hook := test.NewNullLogger()
	g := NewGateway(failingRepo{err: errors.New("disk full")}, "", logger)

	g.Save(context.Background(), models.NewAppState())

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
	assert.EqualError(t, hook.LastEntry().Data[log.ErrorKey].(error), "disk full")
}

func TestGateway_LoadFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	g := NewGateway(failingRepo{err: errors.New("timeout")}, "custom", logger)

	_, ok := g.Load(context.Background())
	assert.False(t, ok)
	assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "custom", hook.LastEntry().Data["key"])
}

func TestGateway_Clear(t *testing.T) {
	logger, _ := test.NewNullLogger()
	g := NewGateway(newRedisRepo(t), "", logger)
	ctx := context.Background()

	g.Save(ctx, sampleState(t))
	require.NoError(t, g.Clear(ctx))

	_, ok := g.Load(ctx)
	assert.False(t, ok)
}

func civilDate(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}
