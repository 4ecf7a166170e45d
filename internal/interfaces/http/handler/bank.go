package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appaccounting "github.com/clubpanel/backend/internal/application/accounting"
	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/clubpanel/backend/internal/interfaces/http/dto"
	"github.com/clubpanel/backend/internal/interfaces/http/middleware"
)

// BankHandler handles bank movement HTTP requests
type BankHandler struct {
	BaseHandler
	bankService *appaccounting.BankService
}

// NewBankHandler creates a new bank movement handler
func NewBankHandler(bankService *appaccounting.BankService) *BankHandler {
	return &BankHandler{bankService: bankService}
}

// BankMovementRequest represents the request body for registering a bank movement
type BankMovementRequest struct {
	OperationDate string  `json:"operation_date" binding:"required" example:"2026-03-12"`
	ValueDate     *string `json:"value_date" example:"2026-03-13"`
	Amount        float64 `json:"amount" binding:"required"`
	Description   string  `json:"description" binding:"omitempty,max=2000"`
	Reference1    string  `json:"reference_1" binding:"omitempty,max=100"`
	Reference2    string  `json:"reference_2" binding:"omitempty,max=100"`
}

// BankMovementFilterRequest represents the query parameters for listing movements
type BankMovementFilterRequest struct {
	Search   string `form:"search"`
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
}

// BankMovementResponse represents a bank movement in responses
type BankMovementResponse struct {
	ID            int64      `json:"id"`
	OperationDate time.Time  `json:"operation_date"`
	ValueDate     *time.Time `json:"value_date,omitempty"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description,omitempty"`
	Reference1    string     `json:"reference_1,omitempty"`
	Reference2    string     `json:"reference_2,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateMovement godoc
// @Summary      Register a bank movement
// @Description  Register a movement from the club's bank statement
// @Tags         bank
// @Accept       json
// @Produce      json
// @Param        request body BankMovementRequest true "Movement data"
// @Success      201 {object} dto.Response{data=BankMovementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /bank-movements [post]
func (h *BankHandler) CreateMovement(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var req BankMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	operationDate, err := time.Parse(dateLayout, req.OperationDate)
	if err != nil {
		h.BadRequest(c, "Invalid operation_date format, expected YYYY-MM-DD")
		return
	}

	input := appaccounting.BankMovementInput{
		OperationDate: operationDate,
		Amount:        decimalAmount(req.Amount),
		Description:   req.Description,
		Reference1:    req.Reference1,
		Reference2:    req.Reference2,
	}
	if req.ValueDate != nil && *req.ValueDate != "" {
		t, err := time.Parse(dateLayout, *req.ValueDate)
		if err != nil {
			h.BadRequest(c, "Invalid value_date format, expected YYYY-MM-DD")
			return
		}
		input.ValueDate = &t
	}

	movement, err := h.bankService.CreateMovement(c.Request.Context(), scope.ClubID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toBankMovementResponse(movement))
}

// GetMovement godoc
// @Summary      Get a bank movement
// @Tags         bank
// @Produce      json
// @Param        id path int true "Movement ID"
// @Success      200 {object} dto.Response{data=BankMovementResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /bank-movements/{id} [get]
func (h *BankHandler) GetMovement(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid movement ID")
		return
	}

	movement, err := h.bankService.GetMovement(c.Request.Context(), scope.ClubID, uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toBankMovementResponse(movement))
}

// ListMovements godoc
// @Summary      List bank movements
// @Description  List the active club's bank movements with pagination and text search
// @Tags         bank
// @Produce      json
// @Param        search query string false "Search in description and references"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]BankMovementResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /bank-movements [get]
func (h *BankHandler) ListMovements(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var filter BankMovementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.bankService.ListMovements(c.Request.Context(), scope.ClubID, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]BankMovementResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = toBankMovementResponse(&result.Items[i])
	}

	h.SuccessWithMeta(c, responses, result.Total, result.Page, result.PageSize)
}

func toBankMovementResponse(m *accounting.BankMovement) BankMovementResponse {
	return BankMovementResponse{
		ID:            m.ID,
		OperationDate: m.OperationDate,
		ValueDate:     m.ValueDate,
		Amount:        m.Amount.InexactFloat64(),
		Description:   m.Description,
		Reference1:    m.Reference1,
		Reference2:    m.Reference2,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
