package persistence

import (
	"context"
	"errors"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormClubRepository implements identity.ClubRepository using GORM
type GormClubRepository struct {
	db *gorm.DB
}

// NewGormClubRepository creates a new GormClubRepository
func NewGormClubRepository(db *gorm.DB) *GormClubRepository {
	return &GormClubRepository{db: db}
}

// Create inserts a new club
func (r *GormClubRepository) Create(ctx context.Context, club *identity.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

// CreateWithOwner creates a club together with its owner membership.
// The membership's ClubID is filled from the generated club ID.
func (r *GormClubRepository) CreateWithOwner(ctx context.Context, club *identity.Club, owner *identity.Membership) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(club).Error; err != nil {
			return err
		}
		owner.ClubID = club.ID
		return tx.Create(owner).Error
	})
}

// Update persists changes to an existing club
func (r *GormClubRepository) Update(ctx context.Context, club *identity.Club) error {
	result := r.db.WithContext(ctx).Save(club)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a club by its ID
func (r *GormClubRepository) FindByID(ctx context.Context, id int64) (*identity.Club, error) {
	var club identity.Club
	if err := r.db.WithContext(ctx).First(&club, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &club, nil
}

// FindByIDs finds multiple clubs by their IDs
func (r *GormClubRepository) FindByIDs(ctx context.Context, ids []int64) ([]*identity.Club, error) {
	if len(ids) == 0 {
		return []*identity.Club{}, nil
	}

	var clubs []*identity.Club
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

// Ensure GormClubRepository implements ClubRepository
var _ identity.ClubRepository = (*GormClubRepository)(nil)
