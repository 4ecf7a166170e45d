package identity

import (
	"time"

	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Role is the role a user holds inside one club. A user's roles in
// different clubs are entirely independent.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// ParseRole validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleManager, RoleViewer:
		return Role(s), nil
	}
	return "", shared.NewDomainError("INVALID_ROLE", "Unknown role: "+s)
}

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Membership links a user to a club with exactly one role.
// A user has at most one membership per club.
type Membership struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ClubID    int64 `gorm:"not null;uniqueIndex:uq_memberships_club_user"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:uq_memberships_club_user"`
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMembership creates a membership after validating the role
func NewMembership(clubID int64, userID uuid.UUID, role Role) (*Membership, error) {
	if clubID <= 0 {
		return nil, shared.NewDomainError("INVALID_CLUB_ID", "Club ID must be a positive integer")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}

	now := time.Now()
	return &Membership{
		ClubID:    clubID,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeRole updates the member's role within the club
func (m *Membership) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	m.Role = role
	m.UpdatedAt = time.Now()
	return nil
}

// Member is the read model for the club member roster: a membership
// joined with the user's identity fields.
type Member struct {
	MembershipID int64     `json:"membership_id"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	JoinedAt     time.Time `json:"joined_at"`
}
