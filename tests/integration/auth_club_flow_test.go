package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	accountingapp "github.com/clubpanel/backend/internal/application/accounting"
	identityapp "github.com/clubpanel/backend/internal/application/identity"
	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/infrastructure/auth"
	"github.com/clubpanel/backend/internal/infrastructure/config"
	"github.com/clubpanel/backend/internal/infrastructure/persistence"
	"github.com/clubpanel/backend/internal/interfaces/http/handler"
	"github.com/clubpanel/backend/internal/interfaces/http/middleware"
	"github.com/clubpanel/backend/internal/interfaces/http/router"
)

type apiServer struct {
	engine *gin.Engine
	tdb    *TestDB
}

// newAPIServer wires the HTTP stack against the container database the
// same way the server entrypoint does, minus the outer middleware that
// does not affect authorization behavior.
func newAPIServer(t *testing.T) *apiServer {
	t.Helper()

	tdb := SetupTestDB(t)
	tdb.CleanTables(t)

	log := zap.NewNop()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	userRepo := persistence.NewGormUserRepository(tdb.DB)
	clubRepo := persistence.NewGormClubRepository(tdb.DB)
	membershipRepo := persistence.NewGormMembershipRepository(tdb.DB)
	supplierRepo := persistence.NewGormSupplierRepository(tdb.DB)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-test-secret-0123456789abcdef",
		RefreshSecret:          "integration-test-refresh-0123456789abcdef",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "clubpanel-test",
		MaxRefreshCount:        5,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	clubService := identityapp.NewClubService(clubRepo, membershipRepo, log)
	memberService := identityapp.NewMemberService(membershipRepo, userRepo, log)
	supplierService := accountingapp.NewSupplierService(supplierRepo, log)

	authHandler := handler.NewAuthHandler(authService, jwtService)
	clubHandler := handler.NewClubHandler(clubService, config.CookieConfig{
		Path:   "/",
		MaxAge: time.Hour,
	})
	memberHandler := handler.NewMemberHandler(memberService)
	supplierHandler := handler.NewSupplierHandler(supplierService)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	activeClub := middleware.ActiveClubMiddleware(middleware.ActiveClubConfig{
		Memberships: membershipRepo,
		Logger:      log,
	})

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)

	clubRoutes := router.NewDomainGroup("clubs", "/clubs")
	clubRoutes.POST("", clubHandler.CreateClub)
	clubRoutes.GET("", clubHandler.ListClubs)
	clubRoutes.POST("/select", clubHandler.SelectClub)

	currentClubRoutes := clubRoutes.Group("current-club", "/current")
	currentClubRoutes.Use(activeClub)
	currentClubRoutes.GET("",
		middleware.RequireCapability(identity.CapabilityView),
		clubHandler.GetCurrentClub)

	memberRoutes := clubRoutes.Group("members", "/members")
	memberRoutes.Use(activeClub)
	memberRoutes.POST("",
		middleware.RequireCapability(identity.CapabilityManageMembers),
		memberHandler.AddMember)
	memberRoutes.PUT("/:id/role",
		middleware.RequireCapability(identity.CapabilityManageMembers),
		memberHandler.ChangeMemberRole)

	supplierRoutes := router.NewDomainGroup("suppliers", "/suppliers")
	supplierRoutes.Use(activeClub)
	supplierRoutes.GET("",
		middleware.RequireCapability(identity.CapabilityView),
		supplierHandler.ListSuppliers)
	supplierRoutes.POST("",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		supplierHandler.CreateSupplier)

	r.Register(authRoutes).Register(clubRoutes).Register(supplierRoutes)
	r.Setup()

	return &apiServer{engine: engine, tdb: tdb}
}

func (s *apiServer) do(t *testing.T, method, path string, body any, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", w.Body.String())
	return envelope.Data
}

func (s *apiServer) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":        email,
		"password":     "sup3r-secret-pw",
		"display_name": "Integration Tester",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": "sup3r-secret-pw",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	login := decodeData[handler.LoginResponse](t, w)
	require.NotEmpty(t, login.Token.AccessToken)
	return login.Token.AccessToken
}

func (s *apiServer) createClub(t *testing.T, token, name string) int64 {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/clubs", gin.H{"name": name}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeData[handler.ClubWithRoleResponse](t, w)
	require.NotZero(t, created.Club.ID)
	require.Equal(t, "owner", created.Role)
	return created.Club.ID
}

func clubCookie(clubID int64) *http.Cookie {
	return &http.Cookie{
		Name:  middleware.ClubCookieName,
		Value: strconv.FormatInt(clubID, 10),
	}
}

func TestAuthClubFlow(t *testing.T) {
	s := newAPIServer(t)

	token := s.registerAndLogin(t, "owner@example.com")

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/clubs", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	clubID := s.createClub(t, token, "Riverside Rowing Club")

	t.Run("club listing includes the new club", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/clubs", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		clubs := decodeData[[]handler.ClubWithRoleResponse](t, w)
		require.Len(t, clubs, 1)
		assert.Equal(t, clubID, clubs[0].Club.ID)
	})

	t.Run("scoped route without cookie fails closed", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/clubs/current", nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NO_ACTIVE_CLUB")
	})

	t.Run("selecting the club sets the cookie", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/clubs/select", gin.H{"club_id": clubID}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var found bool
		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.ClubCookieName {
				found = true
				assert.Equal(t, strconv.FormatInt(clubID, 10), c.Value)
			}
		}
		assert.True(t, found, "expected %s cookie in response", middleware.ClubCookieName)
	})

	cookie := clubCookie(clubID)

	t.Run("scoped routes work with the cookie", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/clubs/current", nil, token, cookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		current := decodeData[handler.ClubWithRoleResponse](t, w)
		assert.Equal(t, clubID, current.Club.ID)
	})

	t.Run("supplier create and list under the active club", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/suppliers", gin.H{
			"name":   "Boathouse Maintenance SL",
			"tax_id": "B87654321",
		}, token, cookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = s.do(t, http.MethodGet, "/api/v1/suppliers", nil, token, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		suppliers := decodeData[[]handler.SupplierResponse](t, w)
		require.Len(t, suppliers, 1)
		assert.Equal(t, "Boathouse Maintenance SL", suppliers[0].Name)
	})
}

func TestClubAccessDeniedForOutsiders(t *testing.T) {
	s := newAPIServer(t)

	ownerToken := s.registerAndLogin(t, "owner@example.com")
	clubID := s.createClub(t, ownerToken, "Riverside Rowing Club")

	outsiderToken := s.registerAndLogin(t, "outsider@example.com")

	t.Run("selection rejected for non members", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/clubs/select", gin.H{"club_id": clubID}, outsiderToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})

	t.Run("forged cookie does not grant access", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/suppliers", nil, outsiderToken, clubCookie(clubID))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NO_ACTIVE_CLUB")
	})

	t.Run("garbage cookie fails closed", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/suppliers", nil, outsiderToken, &http.Cookie{
			Name:  middleware.ClubCookieName,
			Value: "not-a-number",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NO_ACTIVE_CLUB")
	})
}

func TestViewerRoleCannotWrite(t *testing.T) {
	s := newAPIServer(t)

	ownerToken := s.registerAndLogin(t, "owner@example.com")
	clubID := s.createClub(t, ownerToken, "Riverside Rowing Club")
	ownerCookie := clubCookie(clubID)

	viewerToken := s.registerAndLogin(t, "viewer@example.com")

	w := s.do(t, http.MethodPost, "/api/v1/clubs/members", gin.H{
		"email": "viewer@example.com",
		"role":  "viewer",
	}, ownerToken, ownerCookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/clubs/select", gin.H{"club_id": clubID}, viewerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	viewerCookie := clubCookie(clubID)

	t.Run("viewer can read", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/suppliers", nil, viewerToken, viewerCookie)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("viewer cannot create suppliers", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/suppliers", gin.H{
			"name": fmt.Sprintf("Supplier %d", time.Now().UnixNano()),
		}, viewerToken, viewerCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})
}

func TestRoleChangeTakesEffectImmediately(t *testing.T) {
	s := newAPIServer(t)

	ownerToken := s.registerAndLogin(t, "owner@example.com")
	clubID := s.createClub(t, ownerToken, "Riverside Rowing Club")
	ownerCookie := clubCookie(clubID)

	memberToken := s.registerAndLogin(t, "treasurer@example.com")

	w := s.do(t, http.MethodPost, "/api/v1/clubs/members", gin.H{
		"email": "treasurer@example.com",
		"role":  "viewer",
	}, ownerToken, ownerCookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	membership := decodeData[handler.MembershipResponse](t, w)
	require.NotZero(t, membership.MembershipID)

	w = s.do(t, http.MethodPost, "/api/v1/clubs/select", gin.H{"club_id": clubID}, memberToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	memberCookie := clubCookie(clubID)

	t.Run("viewer is denied supplier writes", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/suppliers", gin.H{
			"name": "Remos del Norte SL",
		}, memberToken, memberCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})

	t.Run("promotion applies on the very next request", func(t *testing.T) {
		w := s.do(t, http.MethodPut,
			fmt.Sprintf("/api/v1/clubs/members/%d/role", membership.MembershipID),
			gin.H{"role": "manager"}, ownerToken, ownerCookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Same token, same cookie, no re-selection.
		w = s.do(t, http.MethodPost, "/api/v1/suppliers", gin.H{
			"name": "Remos del Norte SL",
		}, memberToken, memberCookie)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("demotion applies on the very next request", func(t *testing.T) {
		w := s.do(t, http.MethodPut,
			fmt.Sprintf("/api/v1/clubs/members/%d/role", membership.MembershipID),
			gin.H{"role": "viewer"}, ownerToken, ownerCookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.do(t, http.MethodPost, "/api/v1/suppliers", gin.H{
			"name": "Remos del Sur SL",
		}, memberToken, memberCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})
}
