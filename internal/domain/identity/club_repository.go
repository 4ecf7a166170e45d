package identity

import "context"

// ClubRepository defines the interface for club persistence
type ClubRepository interface {
	// Create creates a new club
	Create(ctx context.Context, club *Club) error

	// CreateWithOwner creates a club and its owner membership in one
	// transaction. Either both rows land or neither does.
	CreateWithOwner(ctx context.Context, club *Club, owner *Membership) error

	// Update updates an existing club
	Update(ctx context.Context, club *Club) error

	// FindByID finds a club by ID
	FindByID(ctx context.Context, id int64) (*Club, error)

	// FindByIDs finds clubs by their IDs
	FindByIDs(ctx context.Context, ids []int64) ([]*Club, error)
}
