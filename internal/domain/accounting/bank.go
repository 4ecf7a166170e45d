package accounting

import (
	"strings"
	"time"

	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BankMovement is an imported bank statement line of a club. Its
// operation date is the authoritative date used when the movement is
// reconciled against an accounting entry.
type BankMovement struct {
	shared.ClubEntity
	OperationDate time.Time       `gorm:"not null;index"`
	ValueDate     *time.Time
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Description   string          `gorm:"type:text"`
	Reference1    string          `gorm:"column:reference_1;type:varchar(100)"`
	Reference2    string          `gorm:"column:reference_2;type:varchar(100)"`
}

// TableName returns the table name for GORM
func (BankMovement) TableName() string {
	return "bank_movements"
}

// NewBankMovement creates a new bank movement
func NewBankMovement(clubID int64, operationDate time.Time, amount decimal.Decimal, description string) (*BankMovement, error) {
	if clubID <= 0 {
		return nil, shared.NewDomainError("INVALID_CLUB_ID", "Club ID must be a positive integer")
	}
	if operationDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_OPERATION_DATE", "Operation date is required")
	}

	now := time.Now()
	return &BankMovement{
		ClubEntity:    shared.ClubEntity{ClubID: clubID, CreatedAt: now, UpdatedAt: now},
		OperationDate: operationDate,
		Amount:        amount,
		Description:   strings.TrimSpace(description),
	}, nil
}
