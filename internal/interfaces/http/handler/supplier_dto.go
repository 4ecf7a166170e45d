package handler

import (
	"time"

	"github.com/clubpanel/backend/internal/domain/accounting"
)

// =====================
// Supplier Request DTOs
// =====================

// SupplierRequest represents the request body for creating or updating a supplier
type SupplierRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	TaxID       string `json:"tax_id" binding:"omitempty,max=50"`
	Address     string `json:"address" binding:"omitempty,max=500"`
	Phone       string `json:"phone" binding:"omitempty,max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	ContactName string `json:"contact_name" binding:"omitempty,max=100"`
}

// SupplierFilterRequest represents the query parameters for listing suppliers
type SupplierFilterRequest struct {
	Search   string `form:"search"`
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
}

// =====================
// Supplier Response DTOs
// =====================

// SupplierResponse represents supplier data in responses
type SupplierResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	ContactName string    `json:"contact_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSupplierResponse(s *accounting.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		TaxID:       s.TaxID,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		ContactName: s.ContactName,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
