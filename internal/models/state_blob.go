package models

import "time"

// StateBlob is one serialized AppState stored under a fixed key.
type StateBlob struct {
	Key       string    `gorm:"column:blob_key;primarykey;type:varchar(191)" json:"key"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
