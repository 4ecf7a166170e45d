package persistence

import (
	"context"
	"errors"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSupplierRepository implements accounting.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Create inserts a new supplier
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *accounting.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// Update persists changes to an existing supplier
func (r *GormSupplierRepository) Update(ctx context.Context, supplier *accounting.Supplier) error {
	result := r.db.WithContext(ctx).Save(supplier)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForClub deletes a supplier within a club
func (r *GormSupplierRepository) DeleteForClub(ctx context.Context, clubID, id int64) error {
	result := r.db.WithContext(ctx).Delete(&accounting.Supplier{}, "club_id = ? AND id = ?", clubID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForClub finds a supplier by ID within a club
func (r *GormSupplierRepository) FindByIDForClub(ctx context.Context, clubID, id int64) (*accounting.Supplier, error) {
	var supplier accounting.Supplier
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND id = ?", clubID, id).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAllForClub lists suppliers for a club with the total count
func (r *GormSupplierRepository) FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]accounting.Supplier, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&accounting.Supplier{}).
		Where("club_id = ?", clubID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("name ILIKE ? OR tax_id ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order(orderClause(filter, SupplierSortFields, "name ASC"))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var suppliers []accounting.Supplier
	if err := query.Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ accounting.SupplierRepository = (*GormSupplierRepository)(nil)
