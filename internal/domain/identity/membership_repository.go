package identity

import (
	"context"

	"github.com/google/uuid"
)

// MembershipRepository defines the interface for membership persistence.
// FindByUserAndClub is the hot path: it backs active-club resolution on
// every request.
type MembershipRepository interface {
	// Create creates a new membership
	Create(ctx context.Context, membership *Membership) error

	// Update updates an existing membership
	Update(ctx context.Context, membership *Membership) error

	// Delete deletes a membership by ID
	Delete(ctx context.Context, id int64) error

	// FindByID finds a membership by ID
	FindByID(ctx context.Context, id int64) (*Membership, error)

	// FindByUserAndClub finds the membership of a user in a club.
	// Returns shared.ErrNotFound when the user is not a member.
	FindByUserAndClub(ctx context.Context, userID uuid.UUID, clubID int64) (*Membership, error)

	// FindByUser returns all memberships of a user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*Membership, error)

	// ListMembers returns the member roster of a club, joined with
	// user identity fields
	ListMembers(ctx context.Context, clubID int64) ([]*Member, error)

	// CountByRole counts club members holding the given role
	CountByRole(ctx context.Context, clubID int64, role Role) (int64, error)
}
