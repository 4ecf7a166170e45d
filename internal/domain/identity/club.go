package identity

import (
	"strings"
	"time"

	"github.com/clubpanel/backend/internal/domain/shared"
)

// Club is a tenant: an independent sports club whose accounting data
// is isolated from every other club. Club ids are positive serials.
type Club struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	NIF       string
	Address   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClub creates a new club
func NewClub(name, nif, address, email, phone string) (*Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CLUB_NAME", "Club name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_CLUB_NAME", "Club name cannot exceed 200 characters")
	}
	if email != "" {
		if err := validateEmail(strings.ToLower(strings.TrimSpace(email))); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	return &Club{
		Name:      name,
		NIF:       strings.ToUpper(strings.TrimSpace(nif)),
		Address:   strings.TrimSpace(address),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces the club's profile fields after validation
func (c *Club) Update(name, nif, address, email, phone string) error {
	updated, err := NewClub(name, nif, address, email, phone)
	if err != nil {
		return err
	}
	c.Name = updated.Name
	c.NIF = updated.NIF
	c.Address = updated.Address
	c.Email = updated.Email
	c.Phone = updated.Phone
	c.UpdatedAt = time.Now()
	return nil
}
