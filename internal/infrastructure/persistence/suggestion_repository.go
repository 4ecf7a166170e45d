package persistence

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"gorm.io/gorm"
)

const defaultSuggestionLimit = 200

// GormSuggestionRepository reads candidate pairs from the
// reconciliation_suggestions view. The matching heuristic lives in the
// view definition, not in Go.
type GormSuggestionRepository struct {
	db *gorm.DB
}

// NewGormSuggestionRepository creates a new GormSuggestionRepository
func NewGormSuggestionRepository(db *gorm.DB) *GormSuggestionRepository {
	return &GormSuggestionRepository{db: db}
}

// FindForClub returns suggestion rows for a club, closest dates first
func (r *GormSuggestionRepository) FindForClub(ctx context.Context, clubID int64, limit int) ([]accounting.MatchSuggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	var suggestions []accounting.MatchSuggestion
	if err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("day_diff ASC, entry_id ASC").
		Limit(limit).
		Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

// Ensure GormSuggestionRepository implements SuggestionRepository
var _ accounting.SuggestionRepository = (*GormSuggestionRepository)(nil)
