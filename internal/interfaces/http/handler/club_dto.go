package handler

import (
	"time"

	domainidentity "github.com/clubpanel/backend/internal/domain/identity"
)

// =====================
// Club Request DTOs
// =====================

// ClubRequest represents the request body for creating or updating a club
type ClubRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	NIF     string `json:"nif" binding:"omitempty,max=20"`
	Address string `json:"address" binding:"omitempty,max=500"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
}

// SelectClubRequest represents the request body for selecting the active club
type SelectClubRequest struct {
	ClubID int64 `json:"club_id" binding:"required,min=1"`
}

// =====================
// Club Response DTOs
// =====================

// ClubResponse represents club data in responses
type ClubResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	NIF       string    `json:"nif,omitempty"`
	Address   string    `json:"address,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClubWithRoleResponse pairs a club with the caller's role in it
type ClubWithRoleResponse struct {
	Club ClubResponse `json:"club"`
	Role string       `json:"role"`
}

func toClubResponse(club *domainidentity.Club) ClubResponse {
	return ClubResponse{
		ID:        club.ID,
		Name:      club.Name,
		NIF:       club.NIF,
		Address:   club.Address,
		Email:     club.Email,
		Phone:     club.Phone,
		CreatedAt: club.CreatedAt,
		UpdatedAt: club.UpdatedAt,
	}
}
