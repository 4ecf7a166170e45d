package accounting

import (
	"strings"
	"time"

	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two record families sharing the
// accounting table: supplier invoices and payroll entries.
type EntryKind string

const (
	EntryKindInvoice EntryKind = "invoice"
	EntryKindPayroll EntryKind = "payroll"
)

// ParseEntryKind validates an entry kind string
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case EntryKindInvoice, EntryKindPayroll:
		return EntryKind(s), nil
	}
	return "", shared.NewDomainError("INVALID_ENTRY_KIND", "Unknown entry kind: "+s)
}

// Entry is an accounting record of a club: a supplier invoice or a
// payroll line. TotalAmount is the authoritative amount used when the
// entry is reconciled against a bank movement.
type Entry struct {
	shared.ClubEntity
	Kind            EntryKind       `gorm:"type:varchar(20);not null;index"`
	SupplierID      *int64          `gorm:"index"`
	InvoiceNumber   string          `gorm:"type:varchar(100)"`
	Date            time.Time       `gorm:"not null;index"`
	PaymentDate     *time.Time
	TotalAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Description     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "entries"
}

// NewEntry creates a new accounting entry
func NewEntry(clubID int64, kind EntryKind, date time.Time, totalAmount decimal.Decimal, description string) (*Entry, error) {
	if clubID <= 0 {
		return nil, shared.NewDomainError("INVALID_CLUB_ID", "Club ID must be a positive integer")
	}
	if _, err := ParseEntryKind(string(kind)); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_ENTRY_DATE", "Entry date is required")
	}

	now := time.Now()
	return &Entry{
		ClubEntity:      shared.ClubEntity{ClubID: clubID, CreatedAt: now, UpdatedAt: now},
		Kind:            kind,
		Date:            date,
		TotalAmount:     totalAmount,
		AllocatedAmount: decimal.Zero,
		Description:     strings.TrimSpace(description),
	}, nil
}

// AttachSupplier links the entry to a supplier of the same club
func (e *Entry) AttachSupplier(supplier *Supplier) error {
	if supplier == nil {
		e.SupplierID = nil
		e.UpdatedAt = time.Now()
		return nil
	}
	if !supplier.BelongsTo(e.ClubID) {
		return shared.ErrForbidden
	}
	id := supplier.ID
	e.SupplierID = &id
	e.UpdatedAt = time.Now()
	return nil
}

// RecordAllocation adds an amount to the allocated total when a match
// against a bank movement is recorded
func (e *Entry) RecordAllocation(amount decimal.Decimal) {
	e.AllocatedAmount = e.AllocatedAmount.Add(amount)
	e.UpdatedAt = time.Now()
}

// Outstanding returns the amount not yet matched against the bank
func (e *Entry) Outstanding() decimal.Decimal {
	return e.TotalAmount.Sub(e.AllocatedAmount)
}

// IsSettled reports whether the entry is fully matched
func (e *Entry) IsSettled() bool {
	return e.AllocatedAmount.GreaterThanOrEqual(e.TotalAmount)
}
