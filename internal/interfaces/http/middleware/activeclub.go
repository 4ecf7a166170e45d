package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/infrastructure/logger"
	"github.com/clubpanel/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Active club context keys
const (
	ScopeKey      = "club_scope"
	ActiveClubKey = "active_club_id"
	// ClubCookieName is the cookie carrying the selected club ID.
	// Tokens never carry a club claim; this cookie is the only
	// client-side part of club selection.
	ClubCookieName = "club_id"
)

// ActiveClubConfig holds configuration for active club middleware
type ActiveClubConfig struct {
	// Memberships is required: every request re-checks the
	// (user, club) pair against the store
	Memberships identity.MembershipRepository
	// SkipPaths are paths that don't require an active club
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require an active club
	SkipPathPrefixes []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultActiveClubConfig returns default active club middleware configuration
func DefaultActiveClubConfig(memberships identity.MembershipRepository) ActiveClubConfig {
	return ActiveClubConfig{
		Memberships: memberships,
		SkipPaths: []string{
			"/health",
			"/healthz",
			"/ready",
			"/api/v1/health",
		},
		SkipPathPrefixes: []string{
			"/api/v1/auth",
			"/api/v1/clubs",
		},
		Logger: nil,
	}
}

// ActiveClubMiddleware resolves the active club for the request. The
// club ID comes from the club cookie and is verified against the
// membership store; the resulting Scope is the only way handlers learn
// which club a request operates on.
//
// Resolution fails closed: a missing cookie, an unparsable cookie, a
// missing membership and a store error all leave the request without
// an active club. There is no fallback to any other club.
func ActiveClubMiddleware(cfg ActiveClubConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		userID, err := uuid.Parse(GetJWTUserID(c))
		if err != nil {
			respondNoActiveClub(c, "Authentication required before club selection")
			return
		}

		cookie, err := c.Cookie(ClubCookieName)
		if err != nil || cookie == "" {
			respondNoActiveClub(c, "No club selected")
			return
		}

		clubID, err := strconv.ParseInt(cookie, 10, 64)
		if err != nil || clubID <= 0 {
			respondNoActiveClub(c, "No club selected")
			return
		}

		membership, err := cfg.Memberships.FindByUserAndClub(c.Request.Context(), userID, clubID)
		if err != nil {
			// Store errors and missing memberships are deliberately
			// indistinguishable here: either way the request has no
			// active club.
			if cfg.Logger != nil {
				cfg.Logger.Warn("Active club resolution failed",
					zap.String("user_id", userID.String()),
					zap.Int64("club_id", clubID),
					zap.Error(err),
				)
			}
			respondNoActiveClub(c, "No club selected")
			return
		}

		scope := identity.Scope{
			UserID: userID,
			ClubID: membership.ClubID,
			Role:   membership.Role,
		}
		c.Set(ScopeKey, scope)
		c.Set(ActiveClubKey, scope.ClubID)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithClubID(ctx, log, scope.ClubID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// respondNoActiveClub rejects a club-scoped request that has no
// resolvable active club
func respondNoActiveClub(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden,
		dto.NewErrorResponse(dto.ErrCodeNoActiveClub, message))
}

// GetScope retrieves the resolved club scope from gin.Context
func GetScope(c *gin.Context) (identity.Scope, bool) {
	if value, exists := c.Get(ScopeKey); exists {
		if scope, ok := value.(identity.Scope); ok {
			return scope, true
		}
	}
	return identity.Scope{}, false
}

// MustGetScope retrieves the resolved club scope or panics if absent.
// Use this only in handlers behind the active club middleware.
func MustGetScope(c *gin.Context) identity.Scope {
	scope, ok := GetScope(c)
	if !ok {
		panic("club scope not found in context")
	}
	return scope
}

// GetActiveClubID retrieves the active club ID from gin.Context,
// returning 0 when no club is resolved
func GetActiveClubID(c *gin.Context) int64 {
	if value, exists := c.Get(ActiveClubKey); exists {
		if id, ok := value.(int64); ok {
			return id
		}
	}
	return 0
}
