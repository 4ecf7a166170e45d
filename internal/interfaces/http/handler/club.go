package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubpanel/backend/internal/application/identity"
	"github.com/clubpanel/backend/internal/infrastructure/config"
	"github.com/clubpanel/backend/internal/interfaces/http/dto"
	"github.com/clubpanel/backend/internal/interfaces/http/middleware"
)

// ClubHandler handles club provisioning and active-club selection
type ClubHandler struct {
	BaseHandler
	clubService *identity.ClubService
	cookie      config.CookieConfig
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService *identity.ClubService, cookie config.CookieConfig) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
		cookie:      cookie,
	}
}

// CreateClub godoc
// @Summary      Create a club
// @Description  Provision a new club with the caller as its owner
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        request body ClubRequest true "Club data"
// @Success      201 {object} dto.Response{data=ClubWithRoleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.clubService.CreateClub(c.Request.Context(), userID, identity.CreateClubInput{
		Name:    req.Name,
		NIF:     req.NIF,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ClubWithRoleResponse{
		Club: toClubResponse(result.Club),
		Role: string(result.Role),
	})
}

// ListClubs godoc
// @Summary      List the caller's clubs
// @Description  Return every club the caller belongs to, with the caller's role in each
// @Tags         clubs
// @Produce      json
// @Success      200 {object} dto.Response{data=[]ClubWithRoleResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	clubs, err := h.clubService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ClubWithRoleResponse, len(clubs))
	for i, cw := range clubs {
		responses[i] = ClubWithRoleResponse{
			Club: toClubResponse(cw.Club),
			Role: string(cw.Role),
		}
	}

	h.Success(c, responses)
}

// SelectClub godoc
// @Summary      Select the active club
// @Description  Verify membership in the club and set the active-club cookie
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        request body SelectClubRequest true "Club to activate"
// @Success      200 {object} dto.Response{data=ClubWithRoleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs/select [post]
func (h *ClubHandler) SelectClub(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SelectClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ErrorWithCode(c, dto.ErrCodeInvalidInput, "club_id must be a positive integer")
		return
	}

	membership, err := h.clubService.SelectClub(c.Request.Context(), userID, req.ClubID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	club, err := h.clubService.GetClub(c.Request.Context(), membership.ClubID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.ClubCookieName,
		strconv.FormatInt(membership.ClubID, 10),
		int(h.cookie.MaxAge.Seconds()),
		h.cookie.Path,
		h.cookie.Domain,
		h.cookie.Secure,
		true,
	)

	h.Success(c, ClubWithRoleResponse{
		Club: toClubResponse(club),
		Role: string(membership.Role),
	})
}

// GetCurrentClub godoc
// @Summary      Get the active club
// @Description  Return the profile of the currently selected club
// @Tags         clubs
// @Produce      json
// @Success      200 {object} dto.Response{data=ClubWithRoleResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs/current [get]
func (h *ClubHandler) GetCurrentClub(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	club, err := h.clubService.GetClub(c.Request.Context(), scope.ClubID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ClubWithRoleResponse{
		Club: toClubResponse(club),
		Role: string(scope.Role),
	})
}

// UpdateCurrentClub godoc
// @Summary      Update the active club
// @Description  Update the profile of the currently selected club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        request body ClubRequest true "Club data"
// @Success      200 {object} dto.Response{data=ClubWithRoleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clubs/current [put]
func (h *ClubHandler) UpdateCurrentClub(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var req ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	club, err := h.clubService.UpdateClub(c.Request.Context(), scope.ClubID, identity.CreateClubInput{
		Name:    req.Name,
		NIF:     req.NIF,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ClubWithRoleResponse{
		Club: toClubResponse(club),
		Role: string(scope.Role),
	})
}
