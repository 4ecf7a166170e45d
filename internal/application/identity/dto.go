package identity

import (
	"time"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterInput contains the input for user registration
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned to the panel
type UserInfo struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	LastLoginAt *time.Time
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput carries the token identifiers to revoke on logout
type LogoutInput struct {
	UserID     uuid.UUID
	AccessJTI  string
	AccessTTL  time.Duration
	RefreshJTI string
	RefreshTTL time.Duration
}

// CreateClubInput contains the input for creating a club
type CreateClubInput struct {
	Name    string
	NIF     string
	Address string
	Email   string
	Phone   string
}

// ClubWithRole pairs a club with the requesting user's role in it
type ClubWithRole struct {
	Club *identity.Club
	Role identity.Role
}

// AddMemberInput adds an existing user to a club by email
type AddMemberInput struct {
	ClubID int64
	Email  string
	Role   identity.Role
}

// ChangeMemberRoleInput changes the role of a club member
type ChangeMemberRoleInput struct {
	ClubID       int64
	MembershipID int64
	Role         identity.Role
}

// RemoveMemberInput removes a member from a club
type RemoveMemberInput struct {
	ClubID       int64
	MembershipID int64
}
