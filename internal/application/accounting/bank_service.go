package accounting

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BankService manages a club's imported bank movements
type BankService struct {
	bankRepo accounting.BankMovementRepository
	logger   *zap.Logger
}

// NewBankService creates a new bank movement service
func NewBankService(bankRepo accounting.BankMovementRepository, logger *zap.Logger) *BankService {
	return &BankService{bankRepo: bankRepo, logger: logger}
}

// CreateMovement registers a bank movement in the club
func (s *BankService) CreateMovement(ctx context.Context, clubID int64, input BankMovementInput) (*accounting.BankMovement, error) {
	movement, err := accounting.NewBankMovement(clubID, input.OperationDate, input.Amount, input.Description)
	if err != nil {
		return nil, err
	}
	movement.ValueDate = input.ValueDate
	movement.Reference1 = input.Reference1
	movement.Reference2 = input.Reference2

	if err := s.bankRepo.Create(ctx, movement); err != nil {
		s.logger.Error("Failed to create bank movement", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register bank movement")
	}

	s.logger.Info("Bank movement registered",
		zap.Int64("club_id", clubID),
		zap.Int64("bank_id", movement.ID),
	)
	return movement, nil
}

// GetMovement returns a bank movement belonging to the club
func (s *BankService) GetMovement(ctx context.Context, clubID, id int64) (*accounting.BankMovement, error) {
	return s.bankRepo.FindByIDForClub(ctx, clubID, id)
}

// ListMovements lists the club's bank movements
func (s *BankService) ListMovements(ctx context.Context, clubID int64, filter shared.Filter) (*shared.Paginated[accounting.BankMovement], error) {
	filter = normalizeFilter(filter)
	movements, total, err := s.bankRepo.FindAllForClub(ctx, clubID, filter)
	if err != nil {
		s.logger.Error("Failed to list bank movements", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list bank movements")
	}

	page := shared.NewPaginated(movements, total, filter.Page, filter.PageSize)
	return &page, nil
}
