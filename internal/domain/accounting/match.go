package accounting

import (
	"time"

	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	// MatchMethodTransfer is the payment method recorded for
	// one-to-one panel reconciliations
	MatchMethodTransfer = "transfer"
	// MatchNotesOneToOne marks a match as recorded by the panel's
	// one-to-one reconciliation flow
	MatchNotesOneToOne = "one-to-one reconciliation (panel)"
)

// ReconciliationMatch links one accounting entry to one bank movement.
// The pair (EntryID, BankID) is unique: recording the same pair twice
// is a no-op, never a duplicate and never an error.
type ReconciliationMatch struct {
	shared.ClubEntity
	EntryID int64           `gorm:"not null;uniqueIndex:uq_matches_entry_bank"`
	BankID  int64           `gorm:"not null;uniqueIndex:uq_matches_entry_bank"`
	Amount  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date    time.Time       `gorm:"not null"`
	Method  string          `gorm:"type:varchar(50);not null"`
	Notes   string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReconciliationMatch) TableName() string {
	return "reconciliation_matches"
}

// NewMatch builds a match from its source rows. The amount comes from
// the entry's total and the date from the movement's operation date;
// callers never supply either. Both rows must belong to the club.
func NewMatch(clubID int64, entry *Entry, movement *BankMovement) (*ReconciliationMatch, error) {
	if entry == nil || movement == nil {
		return nil, shared.ErrInvalidInput
	}
	if !entry.BelongsTo(clubID) || !movement.BelongsTo(clubID) {
		return nil, shared.ErrForbidden
	}

	now := time.Now()
	return &ReconciliationMatch{
		ClubEntity: shared.ClubEntity{ClubID: clubID, CreatedAt: now, UpdatedAt: now},
		EntryID:    entry.ID,
		BankID:     movement.ID,
		Amount:     entry.TotalAmount,
		Date:       movement.OperationDate,
		Method:     MatchMethodTransfer,
		Notes:      MatchNotesOneToOne,
	}, nil
}
