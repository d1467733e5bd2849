package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/taskboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBlobRepository is a GORM implementation of BlobRepository backed by the state_blobs table
type GormBlobRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBlobRepository creates a new BlobRepository on top of db
func NewBlobRepository(db *gorm.DB) BlobRepository {
	return &GormBlobRepository{db: db, now: time.Now}
}

// Get returns the blob stored under key
func (r *GormBlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var blob models.StateBlob
	if err := r.db.WithContext(ctx).Where("blob_key = ?", key).First(&blob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, key)
		}
		return nil, fmt.Errorf("load blob %s: %w", key, err)
	}
	return []byte(blob.Data), nil
}

// Put upserts the blob
func (r *GormBlobRepository) Put(ctx context.Context, key string, data []byte) error {
	blob := models.StateBlob{Key: key, Data: string(data), UpdatedAt: r.now().UTC()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("store blob %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob
func (r *GormBlobRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("blob_key = ?", key).Delete(&models.StateBlob{}).Error; err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}
