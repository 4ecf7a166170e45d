package handler

import (
	"github.com/gin-gonic/gin"

	appaccounting "github.com/clubpanel/backend/internal/application/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/clubpanel/backend/internal/interfaces/http/dto"
	"github.com/clubpanel/backend/internal/interfaces/http/middleware"
)

// SupplierHandler handles supplier HTTP requests
type SupplierHandler struct {
	BaseHandler
	supplierService *appaccounting.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *appaccounting.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// CreateSupplier godoc
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request body SupplierRequest true "Supplier data"
// @Success      201 {object} dto.Response{data=SupplierResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), scope.ClubID, toSupplierInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toSupplierResponse(supplier))
}

// UpdateSupplier godoc
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Param        request body SupplierRequest true "Supplier data"
// @Success      200 {object} dto.Response{data=SupplierResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), scope.ClubID, uri.ID, toSupplierInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSupplierResponse(supplier))
}

// GetSupplier godoc
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Success      200 {object} dto.Response{data=SupplierResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), scope.ClubID, uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSupplierResponse(supplier))
}

// ListSuppliers godoc
// @Summary      List suppliers
// @Description  List the active club's suppliers with pagination and text search
// @Tags         suppliers
// @Produce      json
// @Param        search query string false "Search in name, tax ID and contact"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]SupplierResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var filter SupplierFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.supplierService.ListSuppliers(c.Request.Context(), scope.ClubID, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SupplierResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = toSupplierResponse(&result.Items[i])
	}

	h.SuccessWithMeta(c, responses, result.Total, result.Page, result.PageSize)
}

// DeleteSupplier godoc
// @Summary      Delete a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path int true "Supplier ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeNoActiveClub, "No active club selected")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), scope.ClubID, uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func toSupplierInput(req SupplierRequest) appaccounting.SupplierInput {
	return appaccounting.SupplierInput{
		Name:        req.Name,
		TaxID:       req.TaxID,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		ContactName: req.ContactName,
	}
}
