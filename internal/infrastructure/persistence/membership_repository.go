package persistence

import (
	"context"
	"errors"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMembershipRepository implements identity.MembershipRepository using GORM
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewGormMembershipRepository creates a new GormMembershipRepository
func NewGormMembershipRepository(db *gorm.DB) *GormMembershipRepository {
	return &GormMembershipRepository{db: db}
}

// Create inserts a new membership
func (r *GormMembershipRepository) Create(ctx context.Context, membership *identity.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// Update persists changes to an existing membership
func (r *GormMembershipRepository) Update(ctx context.Context, membership *identity.Membership) error {
	result := r.db.WithContext(ctx).Save(membership)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a membership by ID
func (r *GormMembershipRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&identity.Membership{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a membership by its ID
func (r *GormMembershipRepository) FindByID(ctx context.Context, id int64) (*identity.Membership, error) {
	var membership identity.Membership
	if err := r.db.WithContext(ctx).First(&membership, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &membership, nil
}

// FindByUserAndClub finds the membership of a user in a club.
// This backs active-club resolution, so any error surfaces unchanged
// and callers must treat it as "no access".
func (r *GormMembershipRepository) FindByUserAndClub(ctx context.Context, userID uuid.UUID, clubID int64) (*identity.Membership, error) {
	var membership identity.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &membership, nil
}

// FindByUser returns all memberships of a user in club id order, so
// club pickers render a stable list across requests
func (r *GormMembershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*identity.Membership, error) {
	var memberships []*identity.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("club_id ASC").
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListMembers returns the member roster of a club joined with user fields
func (r *GormMembershipRepository) ListMembers(ctx context.Context, clubID int64) ([]*identity.Member, error) {
	var members []*identity.Member
	if err := r.db.WithContext(ctx).
		Table("memberships").
		Select(`memberships.id AS membership_id,
			memberships.user_id,
			users.email,
			users.display_name,
			memberships.role,
			memberships.created_at AS joined_at`).
		Joins("JOIN users ON users.id = memberships.user_id").
		Where("memberships.club_id = ?", clubID).
		Order("memberships.created_at ASC").
		Scan(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CountByRole counts club members holding the given role
func (r *GormMembershipRepository) CountByRole(ctx context.Context, clubID int64, role identity.Role) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Membership{}).
		Where("club_id = ? AND role = ?", clubID, role).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormMembershipRepository implements MembershipRepository
var _ identity.MembershipRepository = (*GormMembershipRepository)(nil)
