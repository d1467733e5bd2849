// Package persistence saves and loads the whole AppState as a single JSON blob.
package persistence

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/yukikurage/taskboard/internal/models"
	"github.com/yukikurage/taskboard/internal/repository"
)

// DefaultKey is the blob key used when none is configured.
const DefaultKey = "taskboard-app-data"

// Gateway stores one AppState under a fixed key. Save never reports failures to the
// caller; they are logged instead.
type Gateway struct {
	repo   repository.BlobRepository
	key    string
	logger *log.Logger
}

func NewGateway(repo repository.BlobRepository, key string, logger *log.Logger) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Gateway{repo: repo, key: key, logger: logger}
}

// Key returns the blob key the gateway writes to.
func (g *Gateway) Key() string {
	return g.key
}

// Save serializes s and writes it. Errors are logged and dropped.
func (g *Gateway) Save(ctx context.Context, s models.AppState) {
	data, err := sonic.ConfigStd.Marshal(s)
	if err != nil {
		g.logger.WithError(err).WithField("key", g.key).Error("failed to encode app state")
		return
	}
	if err := g.repo.Put(ctx, g.key, data); err != nil {
		g.logger.WithError(err).WithField("key", g.key).Error("failed to save app state")
		return
	}
	g.logger.WithField("key", g.key).WithField("bytes", len(data)).Debug("app state saved")
}

// Load reads the stored state. It returns false when nothing is stored or the stored
// blob cannot be decoded, in which case the caller starts from an empty state.
func (g *Gateway) Load(ctx context.Context) (models.AppState, bool) {
	data, err := g.repo.Get(ctx, g.key)
	if err != nil {
		if errors.Is(err, repository.ErrBlobNotFound) {
			g.logger.WithField("key", g.key).Debug("no saved app state")
		} else {
			g.logger.WithError(err).WithField("key", g.key).Error("failed to load app state")
		}
		return models.AppState{}, false
	}

	var s models.AppState
	if err := sonic.ConfigStd.Unmarshal(data, &s); err != nil {
		g.logger.WithError(err).WithField("key", g.key).Warn("saved app state is malformed, ignoring it")
		return models.AppState{}, false
	}
	return normalize(s), true
}

// LoadOrNew returns the stored state, or a fresh empty one.
func (g *Gateway) LoadOrNew(ctx context.Context) models.AppState {
	if s, ok := g.Load(ctx); ok {
		return s
	}
	return models.NewAppState()
}

// Clear removes the stored state.
func (g *Gateway) Clear(ctx context.Context) error {
	return g.repo.Delete(ctx, g.key)
}

// normalize replaces null collections from older or hand-edited blobs with empty ones.
func normalize(s models.AppState) models.AppState {
	if s.Boards == nil {
		s.Boards = []models.Board{}
	}
	if s.Columns == nil {
		s.Columns = []models.Column{}
	}
	if s.Tasks == nil {
		s.Tasks = []models.Task{}
	}
	for i := range s.Boards {
		if s.Boards[i].ColumnIDs == nil {
			s.Boards[i].ColumnIDs = []string{}
		}
	}
	for i := range s.Columns {
		if s.Columns[i].TaskIDs == nil {
			s.Columns[i].TaskIDs = []string{}
		}
	}
	return s
}
