package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubpanel/backend/internal/application/identity"
	domainidentity "github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/interfaces/http/dto"
	"github.com/clubpanel/backend/internal/interfaces/http/middleware"
)

// MemberHandler handles the club member roster
type MemberHandler struct {
	BaseHandler
	memberService *identity.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *identity.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// AddMemberRequest adds an existing user to the club by email
type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=owner admin manager viewer"`
}

// ChangeRoleRequest changes a member's role
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=owner admin manager viewer"`
}

// MemberResponse represents a roster entry in responses
type MemberResponse struct {
	MembershipID int64     `json:"membership_id"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	JoinedAt     time.Time `json:"joined_at"`
}

// MembershipResponse represents a bare membership in responses
type MembershipResponse struct {
	MembershipID int64     `json:"membership_id"`
	ClubID       int64     `json:"club_id"`
	UserID       uuid.UUID `json:"user_id"`
	Role         string    `json:"role"`
}

// ListMembers godoc
// @Summary      List club members
// @Description  Return the active club's member roster
// @Tags         members
// @Produce      json
// @Success      200 {object} dto.Response{data=[]MemberResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), scope.ClubID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = toMemberResponse(m)
	}

	h.Success(c, responses)
}

// AddMember godoc
// @Summary      Add a member
// @Description  Add an existing user to the active club by email
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body AddMemberRequest true "Member data"
// @Success      201 {object} dto.Response{data=MembershipResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	membership, err := h.memberService.AddMember(c.Request.Context(), identity.AddMemberInput{
		ClubID: scope.ClubID,
		Email:  req.Email,
		Role:   domainidentity.Role(req.Role),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toMembershipResponse(membership))
}

// ChangeMemberRole godoc
// @Summary      Change a member's role
// @Description  Change a club member's role; the last owner cannot be demoted
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path int true "Membership ID"
// @Param        request body ChangeRoleRequest true "New role"
// @Success      200 {object} dto.Response{data=MembershipResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs/members/{id}/role [put]
func (h *MemberHandler) ChangeMemberRole(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid membership ID")
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	membership, err := h.memberService.ChangeMemberRole(c.Request.Context(), identity.ChangeMemberRoleInput{
		ClubID:       scope.ClubID,
		MembershipID: uri.ID,
		Role:         domainidentity.Role(req.Role),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toMembershipResponse(membership))
}

// RemoveMember godoc
// @Summary      Remove a member
// @Description  Remove a member from the active club; the last owner cannot be removed
// @Tags         members
// @Produce      json
// @Param        id path int true "Membership ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs/members/{id} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid membership ID")
		return
	}

	err := h.memberService.RemoveMember(c.Request.Context(), identity.RemoveMemberInput{
		ClubID:       scope.ClubID,
		MembershipID: uri.ID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func toMemberResponse(m *domainidentity.Member) MemberResponse {
	return MemberResponse{
		MembershipID: m.MembershipID,
		UserID:       m.UserID,
		Email:        m.Email,
		DisplayName:  m.DisplayName,
		Role:         string(m.Role),
		JoinedAt:     m.JoinedAt,
	}
}

func toMembershipResponse(m *domainidentity.Membership) MembershipResponse {
	return MembershipResponse{
		MembershipID: m.ID,
		ClubID:       m.ClubID,
		UserID:       m.UserID,
		Role:         string(m.Role),
	}
}
