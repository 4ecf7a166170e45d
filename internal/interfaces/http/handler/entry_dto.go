package handler

import (
	"time"

	"github.com/clubpanel/backend/internal/domain/accounting"
)

// =====================
// Entry Request DTOs
// =====================

// EntryRequest represents the request body for creating or updating an entry
type EntryRequest struct {
	Kind          string  `json:"kind" binding:"required,oneof=invoice payroll"`
	SupplierID    *int64  `json:"supplier_id" binding:"omitempty,min=1"`
	InvoiceNumber string  `json:"invoice_number" binding:"omitempty,max=100"`
	Date          string  `json:"date" binding:"required" example:"2026-03-10"`
	PaymentDate   *string `json:"payment_date" example:"2026-03-15"`
	TotalAmount   float64 `json:"total_amount" binding:"required,gt=0"`
	Description   string  `json:"description" binding:"omitempty,max=2000"`
}

// EntryFilterRequest represents the query parameters for listing entries
type EntryFilterRequest struct {
	Kind     string `form:"kind" binding:"omitempty,oneof=invoice payroll"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Search   string `form:"search"`
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
}

// =====================
// Entry Response DTOs
// =====================

// EntryResponse represents an accounting entry in responses
type EntryResponse struct {
	ID              int64      `json:"id"`
	Kind            string     `json:"kind"`
	SupplierID      *int64     `json:"supplier_id,omitempty"`
	InvoiceNumber   string     `json:"invoice_number,omitempty"`
	Date            time.Time  `json:"date"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	TotalAmount     float64    `json:"total_amount"`
	AllocatedAmount float64    `json:"allocated_amount"`
	Outstanding     float64    `json:"outstanding"`
	Settled         bool       `json:"settled"`
	Description     string     `json:"description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toEntryResponse(e *accounting.Entry) EntryResponse {
	return EntryResponse{
		ID:              e.ID,
		Kind:            string(e.Kind),
		SupplierID:      e.SupplierID,
		InvoiceNumber:   e.InvoiceNumber,
		Date:            e.Date,
		PaymentDate:     e.PaymentDate,
		TotalAmount:     e.TotalAmount.InexactFloat64(),
		AllocatedAmount: e.AllocatedAmount.InexactFloat64(),
		Outstanding:     e.Outstanding().InexactFloat64(),
		Settled:         e.IsSettled(),
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
