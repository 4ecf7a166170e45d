package accounting

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchSuggestion is a read model over the reconciliation_suggestions
// database view: candidate entry/movement pairs with cancelling amounts,
// ordered by date proximity. The heuristic lives in the view; this
// side only reads it. Both sides of the candidate pair are carried so
// the caller can render them without further lookups.
type MatchSuggestion struct {
	ClubID           int64           `json:"-"`
	EntryID          int64           `json:"entry_id"`
	EntryDate        time.Time       `json:"entry_date"`
	InvoiceNumber    string          `json:"invoice_number"`
	SupplierName     string          `json:"supplier_name"`
	EntryAmount      decimal.Decimal `json:"entry_amount"`
	PendingAmount    decimal.Decimal `json:"pending_amount"`
	EntryDescription string          `json:"entry_description"`
	BankID           int64           `json:"bank_id"`
	OperationDate    time.Time       `json:"operation_date"`
	BankAmount       decimal.Decimal `json:"bank_amount"`
	BankDescription  string          `json:"bank_description"`
	Reference1       string          `gorm:"column:reference_1" json:"reference_1"`
	Reference2       string          `gorm:"column:reference_2" json:"reference_2"`
	DayDiff          int             `json:"day_diff"`
}

// TableName returns the view name for GORM
func (MatchSuggestion) TableName() string {
	return "reconciliation_suggestions"
}
