package accounting

import (
	"context"
	"time"

	"github.com/clubpanel/backend/internal/domain/shared"
)

// SupplierRepository defines the interface for supplier persistence.
// Every read and write is scoped by club id.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	Update(ctx context.Context, supplier *Supplier) error
	DeleteForClub(ctx context.Context, clubID, id int64) error
	FindByIDForClub(ctx context.Context, clubID, id int64) (*Supplier, error)
	FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]Supplier, int64, error)
}

// EntryFilter narrows entry listings
type EntryFilter struct {
	Kind     *EntryKind
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
	Page     int
	PageSize int
}

// EntryRepository defines the interface for accounting entry persistence
type EntryRepository interface {
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	DeleteForClub(ctx context.Context, clubID, id int64) error
	FindByIDForClub(ctx context.Context, clubID, id int64) (*Entry, error)
	FindAllForClub(ctx context.Context, clubID int64, filter EntryFilter) ([]Entry, int64, error)
}

// BankMovementRepository defines the interface for bank movement persistence
type BankMovementRepository interface {
	Create(ctx context.Context, movement *BankMovement) error
	FindByIDForClub(ctx context.Context, clubID, id int64) (*BankMovement, error)
	FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]BankMovement, int64, error)
}

// MatchRepository defines the interface for reconciliation match persistence
type MatchRepository interface {
	// CreateIgnoreDuplicate inserts the match unless its
	// (entry_id, bank_id) pair already exists. Returns true when a
	// row was inserted, false when the pair was already recorded.
	CreateIgnoreDuplicate(ctx context.Context, match *ReconciliationMatch) (bool, error)

	FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]ReconciliationMatch, int64, error)
}

// SuggestionRepository reads candidate pairs from the suggestions view
type SuggestionRepository interface {
	FindForClub(ctx context.Context, clubID int64, limit int) ([]MatchSuggestion, error)
}
