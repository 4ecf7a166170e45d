package accounting

import (
	"time"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/shopspring/decimal"
)

// SupplierInput contains the fields for creating or updating a supplier
type SupplierInput struct {
	Name        string
	TaxID       string
	Address     string
	Phone       string
	Email       string
	ContactName string
}

// EntryInput contains the fields for creating or updating an entry
type EntryInput struct {
	Kind          accounting.EntryKind
	SupplierID    *int64
	InvoiceNumber string
	Date          time.Time
	PaymentDate   *time.Time
	TotalAmount   decimal.Decimal
	Description   string
}

// BankMovementInput contains the fields for registering a bank movement
type BankMovementInput struct {
	OperationDate time.Time
	ValueDate     *time.Time
	Amount        decimal.Decimal
	Description   string
	Reference1    string
	Reference2    string
}

// RecordMatchInput identifies the entry/movement pair to reconcile
type RecordMatchInput struct {
	EntryID int64
	BankID  int64
}

// RecordMatchResult reports the outcome of a reconciliation request.
// AlreadyRecorded is true when the pair existed before this call.
type RecordMatchResult struct {
	Match           *accounting.ReconciliationMatch
	AlreadyRecorded bool
}
