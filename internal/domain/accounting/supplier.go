package accounting

import (
	"strings"
	"time"

	"github.com/clubpanel/backend/internal/domain/shared"
)

// Supplier represents a supplier of the club. Suppliers are owned by
// one club and are never visible to another.
type Supplier struct {
	shared.ClubEntity
	Name        string `gorm:"type:varchar(200);not null"`
	TaxID       string `gorm:"type:varchar(50)"`
	Address     string `gorm:"type:text"`
	Phone       string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(200)"`
	ContactName string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier for a club
func NewSupplier(clubID int64, name string) (*Supplier, error) {
	if clubID <= 0 {
		return nil, shared.NewDomainError("INVALID_CLUB_ID", "Club ID must be a positive integer")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}

	now := time.Now()
	return &Supplier{
		ClubEntity: shared.ClubEntity{ClubID: clubID, CreatedAt: now, UpdatedAt: now},
		Name:       name,
	}, nil
}

// Update updates the supplier's details
func (s *Supplier) Update(name, taxID, address, phone, email, contactName string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}

	s.Name = name
	s.TaxID = strings.ToUpper(strings.TrimSpace(taxID))
	s.Address = strings.TrimSpace(address)
	s.Phone = strings.TrimSpace(phone)
	s.Email = strings.ToLower(strings.TrimSpace(email))
	s.ContactName = strings.TrimSpace(contactName)
	s.UpdatedAt = time.Now()
	return nil
}
