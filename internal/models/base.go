package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the base model for all entities.
// ID is a UUID string assigned on first insert and never changed afterwards.
// CreatedAt is written by the insert only.
type Base struct {
	ID        string    `json:"id"       gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created"  gorm:"<-:create"`
	UpdatedAt time.Time `json:"modified"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// PrimaryKey returns the identity key, empty until the record has been inserted.
func (b Base) PrimaryKey() string { return b.ID }

// Record is implemented by every entity the store persists.
type Record interface {
	PrimaryKey() string
	TableName() string
}

// Ordered is implemented by entities whose listings have a fixed order.
type Ordered interface {
	DefaultOrder() string
}

// Activatable is implemented by entities carrying an is_active flag.
type Activatable interface {
	Active() bool
}

// InsertionOrder is used for entities without an ordering of their own.
const InsertionOrder = "created_at ASC, id ASC"

// OrderOf returns the listing order for r.
func OrderOf(r Record) string {
	if o, ok := r.(Ordered); ok {
		return o.DefaultOrder()
	}
	return InsertionOrder
}

// ClearPrimaryKey forgets an identity key assigned by an insert that did not commit.
func (b *Base) ClearPrimaryKey() {
	b.ID = ""
	b.CreatedAt = time.Time{}
	b.UpdatedAt = time.Time{}
}
