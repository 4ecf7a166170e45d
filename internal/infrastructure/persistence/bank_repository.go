package persistence

import (
	"context"
	"errors"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBankMovementRepository implements accounting.BankMovementRepository using GORM
type GormBankMovementRepository struct {
	db *gorm.DB
}

// NewGormBankMovementRepository creates a new GormBankMovementRepository
func NewGormBankMovementRepository(db *gorm.DB) *GormBankMovementRepository {
	return &GormBankMovementRepository{db: db}
}

// Create inserts a new bank movement
func (r *GormBankMovementRepository) Create(ctx context.Context, movement *accounting.BankMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByIDForClub finds a bank movement by ID within a club
func (r *GormBankMovementRepository) FindByIDForClub(ctx context.Context, clubID, id int64) (*accounting.BankMovement, error) {
	var movement accounting.BankMovement
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND id = ?", clubID, id).
		First(&movement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindAllForClub lists bank movements for a club with the total count
func (r *GormBankMovementRepository) FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]accounting.BankMovement, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&accounting.BankMovement{}).
		Where("club_id = ?", clubID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("description ILIKE ? OR reference_1 ILIKE ? OR reference_2 ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("operation_date DESC, id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var movements []accounting.BankMovement
	if err := query.Find(&movements).Error; err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// Ensure GormBankMovementRepository implements BankMovementRepository
var _ accounting.BankMovementRepository = (*GormBankMovementRepository)(nil)
