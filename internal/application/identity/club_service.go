package identity

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClubService handles club lifecycle and active-club selection
type ClubService struct {
	clubRepo       identity.ClubRepository
	membershipRepo identity.MembershipRepository
	logger         *zap.Logger
}

// NewClubService creates a new club service
func NewClubService(
	clubRepo identity.ClubRepository,
	membershipRepo identity.MembershipRepository,
	logger *zap.Logger,
) *ClubService {
	return &ClubService{
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// CreateClub creates a club and makes the creating user its owner
func (s *ClubService) CreateClub(ctx context.Context, userID uuid.UUID, input CreateClubInput) (*ClubWithRole, error) {
	club, err := identity.NewClub(input.Name, input.NIF, input.Address, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	// Club ID is assigned inside the transaction; seed with a
	// placeholder that passes membership validation.
	owner, err := identity.NewMembership(1, userID, identity.RoleOwner)
	if err != nil {
		return nil, err
	}

	if err := s.clubRepo.CreateWithOwner(ctx, club, owner); err != nil {
		s.logger.Error("Failed to create club", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create club")
	}

	s.logger.Info("Club created",
		zap.Int64("club_id", club.ID),
		zap.String("owner_id", userID.String()),
	)

	return &ClubWithRole{Club: club, Role: identity.RoleOwner}, nil
}

// UpdateClub updates a club's profile
func (s *ClubService) UpdateClub(ctx context.Context, clubID int64, input CreateClubInput) (*identity.Club, error) {
	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if err := club.Update(input.Name, input.NIF, input.Address, input.Email, input.Phone); err != nil {
		return nil, err
	}

	if err := s.clubRepo.Update(ctx, club); err != nil {
		s.logger.Error("Failed to update club", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update club")
	}
	return club, nil
}

// GetClub returns a club by ID
func (s *ClubService) GetClub(ctx context.Context, clubID int64) (*identity.Club, error) {
	return s.clubRepo.FindByID(ctx, clubID)
}

// ListForUser returns the clubs the user belongs to, with their role
// in each
func (s *ClubService) ListForUser(ctx context.Context, userID uuid.UUID) ([]ClubWithRole, error) {
	memberships, err := s.membershipRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list memberships", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list clubs")
	}
	if len(memberships) == 0 {
		return []ClubWithRole{}, nil
	}

	ids := make([]int64, 0, len(memberships))
	roleByClub := make(map[int64]identity.Role, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.ClubID)
		roleByClub[m.ClubID] = m.Role
	}

	clubs, err := s.clubRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load clubs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list clubs")
	}

	result := make([]ClubWithRole, 0, len(clubs))
	for _, club := range clubs {
		result = append(result, ClubWithRole{Club: club, Role: roleByClub[club.ID]})
	}
	return result, nil
}

// SelectClub verifies that the user may activate the given club and
// returns the membership backing the selection. Any failure means the
// selection is rejected; there is no fallback club.
func (s *ClubService) SelectClub(ctx context.Context, userID uuid.UUID, clubID int64) (*identity.Membership, error) {
	if clubID <= 0 {
		return nil, shared.ErrInvalidInput
	}

	membership, err := s.membershipRepo.FindByUserAndClub(ctx, userID, clubID)
	if err != nil {
		if err == shared.ErrNotFound {
			s.logger.Warn("Club selection rejected: not a member",
				zap.String("user_id", userID.String()),
				zap.Int64("club_id", clubID),
			)
			return nil, shared.ErrForbidden
		}
		s.logger.Error("Membership lookup failed during club selection", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to select club")
	}
	return membership, nil
}
