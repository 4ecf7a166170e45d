package accounting

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/clubpanel/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ReconciliationService records one-to-one matches between accounting
// entries and bank movements and serves match suggestions
type ReconciliationService struct {
	entryRepo      accounting.EntryRepository
	bankRepo       accounting.BankMovementRepository
	matchRepo      accounting.MatchRepository
	suggestionRepo accounting.SuggestionRepository
	logger         *zap.Logger
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	entryRepo accounting.EntryRepository,
	bankRepo accounting.BankMovementRepository,
	matchRepo accounting.MatchRepository,
	suggestionRepo accounting.SuggestionRepository,
	logger *zap.Logger,
) *ReconciliationService {
	return &ReconciliationService{
		entryRepo:      entryRepo,
		bankRepo:       bankRepo,
		matchRepo:      matchRepo,
		suggestionRepo: suggestionRepo,
		logger:         logger,
	}
}

// RecordMatch reconciles one entry against one bank movement. Both
// rows must belong to the club; the amount and date written come from
// the sources, never from the caller. Submitting an already-recorded
// pair succeeds and reports AlreadyRecorded.
func (s *ReconciliationService) RecordMatch(ctx context.Context, clubID int64, input RecordMatchInput) (*RecordMatchResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "reconciliation", "record_match")
	defer span.End()

	telemetry.SetAttributes(ctx, map[string]interface{}{
		telemetry.AttrClubID:  clubID,
		telemetry.AttrEntryID: input.EntryID,
		telemetry.AttrBankID:  input.BankID,
	})

	entry, err := s.entryRepo.FindByIDForClub(ctx, clubID, input.EntryID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("ENTRY_NOT_FOUND", "Entry does not exist in this club")
		}
		telemetry.RecordError(ctx, err)
		s.logger.Error("Failed to load entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record match")
	}

	movement, err := s.bankRepo.FindByIDForClub(ctx, clubID, input.BankID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("MOVEMENT_NOT_FOUND", "Bank movement does not exist in this club")
		}
		telemetry.RecordError(ctx, err)
		s.logger.Error("Failed to load bank movement", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record match")
	}

	match, err := accounting.NewMatch(clubID, entry, movement)
	if err != nil {
		return nil, err
	}

	created, err := s.matchRepo.CreateIgnoreDuplicate(ctx, match)
	if err != nil {
		telemetry.RecordError(ctx, err)
		s.logger.Error("Failed to insert match", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record match")
	}

	if !created {
		s.logger.Info("Match already recorded",
			zap.Int64("club_id", clubID),
			zap.Int64("entry_id", input.EntryID),
			zap.Int64("bank_id", input.BankID),
		)
		return &RecordMatchResult{Match: match, AlreadyRecorded: true}, nil
	}

	// First time this pair lands: reflect the payment on the entry.
	entry.RecordAllocation(match.Amount)
	if entry.PaymentDate == nil {
		paid := movement.OperationDate
		entry.PaymentDate = &paid
	}
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		s.logger.Error("Failed to update entry allocation",
			zap.Int64("entry_id", entry.ID),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Match recorded but entry update failed")
	}

	telemetry.SetOK(ctx)
	s.logger.Info("Match recorded",
		zap.Int64("club_id", clubID),
		zap.Int64("entry_id", input.EntryID),
		zap.Int64("bank_id", input.BankID),
	)
	return &RecordMatchResult{Match: match, AlreadyRecorded: false}, nil
}

// ListMatches lists the club's recorded matches
func (s *ReconciliationService) ListMatches(ctx context.Context, clubID int64, filter shared.Filter) (*shared.Paginated[accounting.ReconciliationMatch], error) {
	filter = normalizeFilter(filter)
	matches, total, err := s.matchRepo.FindAllForClub(ctx, clubID, filter)
	if err != nil {
		s.logger.Error("Failed to list matches", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list matches")
	}

	page := shared.NewPaginated(matches, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Suggestions returns candidate entry/movement pairs for the club
func (s *ReconciliationService) Suggestions(ctx context.Context, clubID int64, limit int) ([]accounting.MatchSuggestion, error) {
	suggestions, err := s.suggestionRepo.FindForClub(ctx, clubID, limit)
	if err != nil {
		s.logger.Error("Failed to load suggestions", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load suggestions")
	}
	return suggestions, nil
}
