package identity

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MemberService manages the member roster of a club
type MemberService struct {
	membershipRepo identity.MembershipRepository
	userRepo       identity.UserRepository
	logger         *zap.Logger
}

// NewMemberService creates a new member service
func NewMemberService(
	membershipRepo identity.MembershipRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *MemberService {
	return &MemberService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// ListMembers returns the club's member roster
func (s *MemberService) ListMembers(ctx context.Context, clubID int64) ([]*identity.Member, error) {
	members, err := s.membershipRepo.ListMembers(ctx, clubID)
	if err != nil {
		s.logger.Error("Failed to list members", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list members")
	}
	return members, nil
}

// AddMember adds an existing user to the club by email
func (s *MemberService) AddMember(ctx context.Context, input AddMemberInput) (*identity.Membership, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "No account exists with this email")
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add member")
	}

	if _, err := s.membershipRepo.FindByUserAndClub(ctx, user.ID, input.ClubID); err == nil {
		return nil, shared.NewDomainError("ALREADY_MEMBER", "User is already a member of this club")
	} else if err != shared.ErrNotFound {
		s.logger.Error("Failed to check existing membership", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add member")
	}

	membership, err := identity.NewMembership(input.ClubID, user.ID, input.Role)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		s.logger.Error("Failed to create membership", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add member")
	}

	s.logger.Info("Member added",
		zap.Int64("club_id", input.ClubID),
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(input.Role)),
	)
	return membership, nil
}

// ChangeMemberRole changes a member's role, refusing to demote the
// club's last owner
func (s *MemberService) ChangeMemberRole(ctx context.Context, input ChangeMemberRoleInput) (*identity.Membership, error) {
	membership, err := s.findInClub(ctx, input.ClubID, input.MembershipID)
	if err != nil {
		return nil, err
	}

	if membership.Role == identity.RoleOwner && input.Role != identity.RoleOwner {
		if err := s.ensureNotLastOwner(ctx, input.ClubID); err != nil {
			return nil, err
		}
	}

	if err := membership.ChangeRole(input.Role); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Update(ctx, membership); err != nil {
		s.logger.Error("Failed to update membership", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to change role")
	}

	s.logger.Info("Member role changed",
		zap.Int64("club_id", input.ClubID),
		zap.Int64("membership_id", membership.ID),
		zap.String("role", string(input.Role)),
	)
	return membership, nil
}

// RemoveMember removes a member from the club, refusing to remove the
// club's last owner
func (s *MemberService) RemoveMember(ctx context.Context, input RemoveMemberInput) error {
	membership, err := s.findInClub(ctx, input.ClubID, input.MembershipID)
	if err != nil {
		return err
	}

	if membership.Role == identity.RoleOwner {
		if err := s.ensureNotLastOwner(ctx, input.ClubID); err != nil {
			return err
		}
	}

	if err := s.membershipRepo.Delete(ctx, membership.ID); err != nil {
		s.logger.Error("Failed to delete membership", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove member")
	}

	s.logger.Info("Member removed",
		zap.Int64("club_id", input.ClubID),
		zap.Int64("membership_id", membership.ID),
	)
	return nil
}

// findInClub loads a membership and verifies it belongs to the club.
// A membership of another club is indistinguishable from a missing one.
func (s *MemberService) findInClub(ctx context.Context, clubID, membershipID int64) (*identity.Membership, error) {
	membership, err := s.membershipRepo.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if membership.ClubID != clubID {
		return nil, shared.ErrNotFound
	}
	return membership, nil
}

func (s *MemberService) ensureNotLastOwner(ctx context.Context, clubID int64) error {
	owners, err := s.membershipRepo.CountByRole(ctx, clubID, identity.RoleOwner)
	if err != nil {
		s.logger.Error("Failed to count owners", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to verify club owners")
	}
	if owners <= 1 {
		return shared.NewDomainError("LAST_OWNER", "A club must keep at least one owner")
	}
	return nil
}
