package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appaccounting "github.com/clubpanel/backend/internal/application/accounting"
	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/interfaces/http/dto"
	"github.com/clubpanel/backend/internal/interfaces/http/middleware"
)

const dateLayout = "2006-01-02"

// EntryHandler handles accounting entry HTTP requests
type EntryHandler struct {
	BaseHandler
	entryService *appaccounting.EntryService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService *appaccounting.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntry godoc
// @Summary      Create an entry
// @Description  Register an invoice or payroll entry for the active club
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        request body EntryRequest true "Entry data"
// @Success      201 {object} dto.Response{data=EntryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input, err := toEntryInput(req)
	if err != nil {
		h.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), scope.ClubID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toEntryResponse(entry))
}

// UpdateEntry godoc
// @Summary      Update an entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id path int true "Entry ID"
// @Param        request body EntryRequest true "Entry data"
// @Success      200 {object} dto.Response{data=EntryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /entries/{id} [put]
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input, err := toEntryInput(req)
	if err != nil {
		h.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), scope.ClubID, uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toEntryResponse(entry))
}

// GetEntry godoc
// @Summary      Get an entry
// @Tags         entries
// @Produce      json
// @Param        id path int true "Entry ID"
// @Success      200 {object} dto.Response{data=EntryResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /entries/{id} [get]
func (h *EntryHandler) GetEntry(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), scope.ClubID, uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toEntryResponse(entry))
}

// ListEntries godoc
// @Summary      List entries
// @Description  List the active club's entries; kind, date range and text search filters
// @Tags         entries
// @Produce      json
// @Param        kind query string false "invoice or payroll"
// @Param        date_from query string false "Start date YYYY-MM-DD"
// @Param        date_to query string false "End date YYYY-MM-DD"
// @Param        search query string false "Search in invoice number and description"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]EntryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /entries [get]
func (h *EntryHandler) ListEntries(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var req EntryFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := accounting.EntryFilter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Kind != "" {
		kind := accounting.EntryKind(req.Kind)
		filter.Kind = &kind
	}
	if req.DateFrom != "" {
		t, err := time.Parse(dateLayout, req.DateFrom)
		if err != nil {
			h.BadRequest(c, "Invalid date_from format, expected YYYY-MM-DD")
			return
		}
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, err := time.Parse(dateLayout, req.DateTo)
		if err != nil {
			h.BadRequest(c, "Invalid date_to format, expected YYYY-MM-DD")
			return
		}
		filter.DateTo = &t
	}

	result, err := h.entryService.ListEntries(c.Request.Context(), scope.ClubID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]EntryResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = toEntryResponse(&result.Items[i])
	}

	h.SuccessWithMeta(c, responses, result.Total, result.Page, result.PageSize)
}

// DeleteEntry godoc
// @Summary      Delete an entry
// @Tags         entries
// @Produce      json
// @Param        id path int true "Entry ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), scope.ClubID, uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func toEntryInput(req EntryRequest) (appaccounting.EntryInput, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return appaccounting.EntryInput{}, err
	}

	input := appaccounting.EntryInput{
		Kind:          accounting.EntryKind(req.Kind),
		SupplierID:    req.SupplierID,
		InvoiceNumber: req.InvoiceNumber,
		Date:          date,
		TotalAmount:   decimalAmount(req.TotalAmount),
		Description:   req.Description,
	}
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		t, err := time.Parse(dateLayout, *req.PaymentDate)
		if err != nil {
			return appaccounting.EntryInput{}, err
		}
		input.PaymentDate = &t
	}
	return input, nil
}
