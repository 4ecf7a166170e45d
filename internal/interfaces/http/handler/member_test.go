package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appidentity "github.com/clubpanel/backend/internal/application/identity"
	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/domain/shared"
)

func newMemberRouter(scope identity.Scope) (*gin.Engine, *MockMembershipRepository, *MockUserRepository) {
	membershipRepo := new(MockMembershipRepository)
	userRepo := new(MockUserRepository)
	svc := appidentity.NewMemberService(membershipRepo, userRepo, zap.NewNop())
	h := NewMemberHandler(svc)

	router := gin.New()
	group := router.Group("/api/v1/clubs/members", withScope(scope))
	group.GET("", h.ListMembers)
	group.POST("", h.AddMember)
	group.PUT("/:id/role", h.ChangeMemberRole)
	group.DELETE("/:id", h.RemoveMember)
	return router, membershipRepo, userRepo
}

func TestMemberHandler_ListMembers(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleAdmin}

	router, membershipRepo, _ := newMemberRouter(scope)
	membershipRepo.On("ListMembers", mock.Anything, int64(42)).Return([]*identity.Member{
		{MembershipID: 1, UserID: uuid.New(), Email: "tesorero@club.example", Role: identity.RoleOwner, JoinedAt: time.Now()},
	}, nil)

	w := performJSON(t, router, http.MethodGet, "/api/v1/clubs/members", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []MemberResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "tesorero@club.example", body.Data[0].Email)
	assert.Equal(t, "owner", body.Data[0].Role)
}

func TestMemberHandler_AddMember(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleOwner}
	newUserID := uuid.New()

	t.Run("adds an existing user by email", func(t *testing.T) {
		router, membershipRepo, userRepo := newMemberRouter(scope)
		user, err := identity.NewUser("vocal@club.example", "correct horse battery 1", "Vocal")
		require.NoError(t, err)
		user.ID = newUserID
		userRepo.On("FindByEmail", mock.Anything, "vocal@club.example").Return(user, nil)
		membershipRepo.On("FindByUserAndClub", mock.Anything, newUserID, int64(42)).
			Return(nil, shared.ErrNotFound)
		membershipRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *identity.Membership) bool {
			return m.ClubID == 42 && m.UserID == newUserID && m.Role == identity.RoleViewer
		})).Return(nil)

		w := performJSON(t, router, http.MethodPost, "/api/v1/clubs/members",
			AddMemberRequest{Email: "vocal@club.example", Role: "viewer"})

		require.Equal(t, http.StatusCreated, w.Code)
		membershipRepo.AssertExpectations(t)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		router, _, userRepo := newMemberRouter(scope)

		w := performJSON(t, router, http.MethodPost, "/api/v1/clubs/members",
			AddMemberRequest{Email: "vocal@club.example", Role: "president"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("existing member yields a conflict", func(t *testing.T) {
		router, membershipRepo, userRepo := newMemberRouter(scope)
		user, err := identity.NewUser("vocal@club.example", "correct horse battery 1", "Vocal")
		require.NoError(t, err)
		user.ID = newUserID
		userRepo.On("FindByEmail", mock.Anything, "vocal@club.example").Return(user, nil)
		membershipRepo.On("FindByUserAndClub", mock.Anything, newUserID, int64(42)).
			Return(&identity.Membership{ID: 8, ClubID: 42, UserID: newUserID, Role: identity.RoleViewer}, nil)

		w := performJSON(t, router, http.MethodPost, "/api/v1/clubs/members",
			AddMemberRequest{Email: "vocal@club.example", Role: "viewer"})

		assert.Equal(t, http.StatusConflict, w.Code)
		membershipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMemberHandler_ChangeMemberRole(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleOwner}

	t.Run("demoting the last owner is rejected", func(t *testing.T) {
		router, membershipRepo, _ := newMemberRouter(scope)
		membershipRepo.On("FindByID", mock.Anything, int64(7)).
			Return(&identity.Membership{ID: 7, ClubID: 42, UserID: uuid.New(), Role: identity.RoleOwner}, nil)
		membershipRepo.On("CountByRole", mock.Anything, int64(42), identity.RoleOwner).
			Return(int64(1), nil)

		w := performJSON(t, router, http.MethodPut, "/api/v1/clubs/members/7/role",
			ChangeRoleRequest{Role: "admin"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "ERR_LAST_OWNER", decodeErrorCode(t, w))
		membershipRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("changes the role when another owner remains", func(t *testing.T) {
		router, membershipRepo, _ := newMemberRouter(scope)
		membershipRepo.On("FindByID", mock.Anything, int64(7)).
			Return(&identity.Membership{ID: 7, ClubID: 42, UserID: uuid.New(), Role: identity.RoleOwner}, nil)
		membershipRepo.On("CountByRole", mock.Anything, int64(42), identity.RoleOwner).
			Return(int64(2), nil)
		membershipRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *identity.Membership) bool {
			return m.ID == 7 && m.Role == identity.RoleAdmin
		})).Return(nil)

		w := performJSON(t, router, http.MethodPut, "/api/v1/clubs/members/7/role",
			ChangeRoleRequest{Role: "admin"})

		require.Equal(t, http.StatusOK, w.Code)
		membershipRepo.AssertExpectations(t)
	})

	t.Run("membership of another club is not found", func(t *testing.T) {
		router, membershipRepo, _ := newMemberRouter(scope)
		membershipRepo.On("FindByID", mock.Anything, int64(7)).
			Return(&identity.Membership{ID: 7, ClubID: 99, UserID: uuid.New(), Role: identity.RoleViewer}, nil)

		w := performJSON(t, router, http.MethodPut, "/api/v1/clubs/members/7/role",
			ChangeRoleRequest{Role: "admin"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		membershipRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestMemberHandler_RemoveMember(t *testing.T) {
	scope := identity.Scope{UserID: uuid.New(), ClubID: 42, Role: identity.RoleOwner}

	t.Run("removes a non-owner member", func(t *testing.T) {
		router, membershipRepo, _ := newMemberRouter(scope)
		membershipRepo.On("FindByID", mock.Anything, int64(9)).
			Return(&identity.Membership{ID: 9, ClubID: 42, UserID: uuid.New(), Role: identity.RoleViewer}, nil)
		membershipRepo.On("Delete", mock.Anything, int64(9)).Return(nil)

		w := performJSON(t, router, http.MethodDelete, "/api/v1/clubs/members/9", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		membershipRepo.AssertExpectations(t)
	})

	t.Run("removing the last owner is rejected", func(t *testing.T) {
		router, membershipRepo, _ := newMemberRouter(scope)
		membershipRepo.On("FindByID", mock.Anything, int64(9)).
			Return(&identity.Membership{ID: 9, ClubID: 42, UserID: uuid.New(), Role: identity.RoleOwner}, nil)
		membershipRepo.On("CountByRole", mock.Anything, int64(42), identity.RoleOwner).
			Return(int64(1), nil)

		w := performJSON(t, router, http.MethodDelete, "/api/v1/clubs/members/9", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		membershipRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
