package persistence

import (
	"strings"

	"github.com/clubpanel/backend/internal/domain/shared"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// SupplierSortFields contains allowed sort fields for suppliers
var SupplierSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"tax_id":     true,
	"email":      true,
}

// EntrySortFields contains allowed sort fields for accounting entries
var EntrySortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"date":         true,
	"payment_date": true,
	"total_amount": true,
	"kind":         true,
}

// BankMovementSortFields contains allowed sort fields for bank movements
var BankMovementSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"operation_date": true,
	"value_date":     true,
	"amount":         true,
}

// orderClause builds an ORDER BY clause from the filter, restricted to
// the whitelisted column names. An empty or unknown OrderBy falls back
// to the provided default clause.
func orderClause(filter shared.Filter, allowedFields map[string]bool, fallback string) string {
	field := ValidateSortField(filter.OrderBy, allowedFields, "")
	if field == "" {
		return fallback
	}
	return field + " " + ValidateSortOrder(filter.OrderDir)
}
