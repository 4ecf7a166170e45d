package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appaccounting "github.com/clubpanel/backend/internal/application/accounting"
	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/domain/shared"
)

func newSupplierRouter(scope identity.Scope) (*gin.Engine, *MockSupplierRepository) {
	repo := new(MockSupplierRepository)
	svc := appaccounting.NewSupplierService(repo, zap.NewNop())
	h := NewSupplierHandler(svc)

	router := gin.New()
	group := router.Group("/api/v1/suppliers", withScope(scope))
	group.POST("", h.CreateSupplier)
	group.GET("", h.ListSuppliers)
	group.GET("/:id", h.GetSupplier)
	group.PUT("/:id", h.UpdateSupplier)
	group.DELETE("/:id", h.DeleteSupplier)
	return router, repo
}

func storedSupplier(clubID, id int64, name string) *accounting.Supplier {
	supplier, _ := accounting.NewSupplier(clubID, name)
	supplier.ID = id
	return supplier
}

func TestSupplierHandler_CreateSupplier(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleAdmin}

	t.Run("creates supplier in the active club", func(t *testing.T) {
		router, repo := newSupplierRouter(scope)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *accounting.Supplier) bool {
			return s.ClubID == 42 && s.Name == "Campo Verde SL" && s.TaxID == "B12345678"
		})).Return(nil)

		w := performJSON(t, router, http.MethodPost, "/api/v1/suppliers",
			SupplierRequest{Name: "Campo Verde SL", TaxID: "B12345678"})

		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Data SupplierResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Campo Verde SL", body.Data.Name)
		repo.AssertExpectations(t)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		router, repo := newSupplierRouter(scope)

		w := performJSON(t, router, http.MethodPost, "/api/v1/suppliers", SupplierRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSupplierHandler_GetSupplier(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleViewer}

	t.Run("returns the supplier", func(t *testing.T) {
		router, repo := newSupplierRouter(scope)
		repo.On("FindByIDForClub", mock.Anything, int64(42), int64(3)).
			Return(storedSupplier(42, 3, "Campo Verde SL"), nil)

		w := performJSON(t, router, http.MethodGet, "/api/v1/suppliers/3", nil)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("supplier of another club is not found", func(t *testing.T) {
		router, repo := newSupplierRouter(scope)
		repo.On("FindByIDForClub", mock.Anything, int64(42), int64(3)).
			Return(nil, shared.ErrNotFound)

		w := performJSON(t, router, http.MethodGet, "/api/v1/suppliers/3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		router, repo := newSupplierRouter(scope)

		w := performJSON(t, router, http.MethodGet, "/api/v1/suppliers/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByIDForClub", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSupplierHandler_ListSuppliers(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleViewer}

	router, repo := newSupplierRouter(scope)
	repo.On("FindAllForClub", mock.Anything, int64(42), mock.MatchedBy(func(f shared.Filter) bool {
		return f.Search == "campo" && f.Page == 2 && f.PageSize == 10
	})).Return([]accounting.Supplier{*storedSupplier(42, 3, "Campo Verde SL")}, int64(11), nil)

	w := performJSON(t, router, http.MethodGet, "/api/v1/suppliers?search=campo&page=2&page_size=10", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []SupplierResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, int64(11), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestSupplierHandler_DeleteSupplier(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleOwner}

	router, repo := newSupplierRouter(scope)
	repo.On("DeleteForClub", mock.Anything, int64(42), int64(3)).Return(nil)

	w := performJSON(t, router, http.MethodDelete, "/api/v1/suppliers/3", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
