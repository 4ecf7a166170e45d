package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides common fields for uuid-keyed entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ClubEntity provides common fields for club-scoped records.
// Club-scoped tables use serial int64 keys and carry the owning
// club id on every row.
type ClubEntity struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ClubID    int64 `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelongsTo reports whether the record is owned by the given club.
func (e *ClubEntity) BelongsTo(clubID int64) bool {
	return e.ClubID == clubID
}
