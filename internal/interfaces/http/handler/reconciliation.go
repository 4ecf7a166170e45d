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

// ReconciliationHandler handles one-to-one reconciliation HTTP requests
type ReconciliationHandler struct {
	BaseHandler
	reconciliationService *appaccounting.ReconciliationService
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationService *appaccounting.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// RecordMatchRequest identifies the entry/movement pair to reconcile.
// ClubID is optional; when present it must name the active club.
type RecordMatchRequest struct {
	EntryID int64  `json:"entry_id" binding:"required,min=1"`
	BankID  int64  `json:"bank_id" binding:"required,min=1"`
	ClubID  *int64 `json:"club_id" binding:"omitempty,min=1"`
}

// MatchFilterRequest represents the query parameters for listing matches
type MatchFilterRequest struct {
	Page     int `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
}

// SuggestionFilterRequest represents the query parameters for listing suggestions
type SuggestionFilterRequest struct {
	Limit int `form:"limit,omitempty" binding:"omitempty,min=1,max=500"`
}

// MatchResponse represents a recorded match in responses
type MatchResponse struct {
	ID      int64     `json:"id"`
	EntryID int64     `json:"entry_id"`
	BankID  int64     `json:"bank_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Method  string    `json:"method"`
	Notes   string    `json:"notes,omitempty"`
}

// RecordMatchResponse reports the outcome of a reconciliation request
type RecordMatchResponse struct {
	Match           MatchResponse `json:"match"`
	AlreadyRecorded bool          `json:"already_recorded"`
}

// SuggestionResponse represents a reconciliation candidate pair. It
// carries both sides in full so the caller can present the entry and
// the movement without further lookups.
type SuggestionResponse struct {
	EntryID          int64     `json:"entry_id"`
	EntryDate        time.Time `json:"entry_date"`
	InvoiceNumber    string    `json:"invoice_number,omitempty"`
	SupplierName     string    `json:"supplier_name,omitempty"`
	EntryAmount      float64   `json:"entry_amount"`
	PendingAmount    float64   `json:"pending_amount"`
	EntryDescription string    `json:"entry_description,omitempty"`
	BankID           int64     `json:"bank_id"`
	OperationDate    time.Time `json:"operation_date"`
	BankAmount       float64   `json:"bank_amount"`
	BankDescription  string    `json:"bank_description,omitempty"`
	Reference1       string    `json:"reference_1,omitempty"`
	Reference2       string    `json:"reference_2,omitempty"`
	DayDiff          int       `json:"day_diff"`
}

// RecordMatch godoc
// @Summary      Record a reconciliation match
// @Description  Match an entry against a bank movement; repeating a recorded pair is a no-op
// @Tags         reconciliation
// @Accept       json
// @Produce      json
// @Param        request body RecordMatchRequest true "Pair to match"
// @Success      201 {object} dto.Response{data=RecordMatchResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reconciliation/matches [post]
func (h *ReconciliationHandler) RecordMatch(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var req RecordMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	// A posted club id that names some other club is rejected, never
	// silently corrected to the active one.
	if req.ClubID != nil && *req.ClubID != scope.ClubID {
		h.ErrorWithCode(c, dto.ErrCodeClubMismatch, "Request club does not match the active club")
		return
	}

	result, err := h.reconciliationService.RecordMatch(c.Request.Context(), scope.ClubID, appaccounting.RecordMatchInput{
		EntryID: req.EntryID,
		BankID:  req.BankID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := RecordMatchResponse{
		Match:           toMatchResponse(result.Match),
		AlreadyRecorded: result.AlreadyRecorded,
	}
	if result.AlreadyRecorded {
		h.Success(c, response)
		return
	}
	h.Created(c, response)
}

// ListMatches godoc
// @Summary      List recorded matches
// @Tags         reconciliation
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]MatchResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reconciliation/matches [get]
func (h *ReconciliationHandler) ListMatches(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var filter MatchFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.reconciliationService.ListMatches(c.Request.Context(), scope.ClubID, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]MatchResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = toMatchResponse(&result.Items[i])
	}

	h.SuccessWithMeta(c, responses, result.Total, result.Page, result.PageSize)
}

// ListSuggestions godoc
// @Summary      List reconciliation suggestions
// @Description  Candidate entry/movement pairs from the suggestion view, closest dates first
// @Tags         reconciliation
// @Produce      json
// @Param        limit query int false "Maximum suggestions to return"
// @Success      200 {object} dto.Response{data=[]SuggestionResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reconciliation/suggestions [get]
func (h *ReconciliationHandler) ListSuggestions(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var filter SuggestionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	suggestions, err := h.reconciliationService.Suggestions(c.Request.Context(), scope.ClubID, filter.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		responses[i] = SuggestionResponse{
			EntryID:          s.EntryID,
			EntryDate:        s.EntryDate,
			InvoiceNumber:    s.InvoiceNumber,
			SupplierName:     s.SupplierName,
			EntryAmount:      s.EntryAmount.InexactFloat64(),
			PendingAmount:    s.PendingAmount.InexactFloat64(),
			EntryDescription: s.EntryDescription,
			BankID:           s.BankID,
			OperationDate:    s.OperationDate,
			BankAmount:       s.BankAmount.InexactFloat64(),
			BankDescription:  s.BankDescription,
			Reference1:       s.Reference1,
			Reference2:       s.Reference2,
			DayDiff:          s.DayDiff,
		}
	}

	h.Success(c, responses)
}

func toMatchResponse(m *accounting.ReconciliationMatch) MatchResponse {
	return MatchResponse{
		ID:      m.ID,
		EntryID: m.EntryID,
		BankID:  m.BankID,
		Amount:  m.Amount.InexactFloat64(),
		Date:    m.Date,
		Method:  m.Method,
		Notes:   m.Notes,
	}
}
