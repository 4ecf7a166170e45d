package persistence

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMatchRepository implements accounting.MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// CreateIgnoreDuplicate inserts the match unless the (entry_id, bank_id)
// pair already exists. The conflict is resolved in the database so two
// concurrent submissions cannot both insert.
func (r *GormMatchRepository) CreateIgnoreDuplicate(ctx context.Context, match *accounting.ReconciliationMatch) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_id"}, {Name: "bank_id"}},
			DoNothing: true,
		}).
		Create(match)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindAllForClub lists reconciliation matches for a club with the total count
func (r *GormMatchRepository) FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]accounting.ReconciliationMatch, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&accounting.ReconciliationMatch{}).
		Where("club_id = ?", clubID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("date DESC, id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var matches []accounting.ReconciliationMatch
	if err := query.Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// Ensure GormMatchRepository implements MatchRepository
var _ accounting.MatchRepository = (*GormMatchRepository)(nil)
