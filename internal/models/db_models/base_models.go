package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel has no soft delete: cached rows are upserted on a unique key,
// and a soft-deleted row would still hold that key.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime"`
	UpdatedAt int64     `gorm:"autoUpdateTime"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
