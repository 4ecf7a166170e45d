package persistence

import (
	"context"
	"errors"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEntryRepository implements accounting.EntryRepository using GORM
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// Create inserts a new entry
func (r *GormEntryRepository) Create(ctx context.Context, entry *accounting.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Update persists changes to an existing entry
func (r *GormEntryRepository) Update(ctx context.Context, entry *accounting.Entry) error {
	result := r.db.WithContext(ctx).Save(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForClub deletes an entry within a club
func (r *GormEntryRepository) DeleteForClub(ctx context.Context, clubID, id int64) error {
	result := r.db.WithContext(ctx).Delete(&accounting.Entry{}, "club_id = ? AND id = ?", clubID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForClub finds an entry by ID within a club
func (r *GormEntryRepository) FindByIDForClub(ctx context.Context, clubID, id int64) (*accounting.Entry, error) {
	var entry accounting.Entry
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND id = ?", clubID, id).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAllForClub lists entries for a club narrowed by the filter,
// with the total count before pagination
func (r *GormEntryRepository) FindAllForClub(ctx context.Context, clubID int64, filter accounting.EntryFilter) ([]accounting.Entry, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&accounting.Entry{}).
		Where("club_id = ?", clubID)

	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if filter.DateFrom != nil {
		base = base.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		base = base.Where("date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("description ILIKE ? OR invoice_number ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("date DESC, id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var entries []accounting.Entry
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// Ensure GormEntryRepository implements EntryRepository
var _ accounting.EntryRepository = (*GormEntryRepository)(nil)
