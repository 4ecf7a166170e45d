package middleware

import (
	"net/http"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CapabilityConfig holds configuration for capability middleware
type CapabilityConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when the capability is denied (optional)
	OnDenied func(c *gin.Context, capability identity.Capability)
}

// RequireCapability creates middleware that requires the active club
// role to grant a capability. It must run behind the active club
// middleware; a request without a resolved scope is rejected.
func RequireCapability(capability identity.Capability) gin.HandlerFunc {
	return RequireCapabilityWithConfig(capability, CapabilityConfig{})
}

// RequireCapabilityWithConfig creates capability middleware with custom config
func RequireCapabilityWithConfig(capability identity.Capability, cfg CapabilityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := GetScope(c)
		if !ok {
			respondNoActiveClub(c, "No club selected")
			return
		}

		if !scope.Can(capability) {
			if cfg.OnDenied != nil {
				cfg.OnDenied(c, capability)
				return
			}
			if cfg.Logger != nil {
				cfg.Logger.Warn("Capability denied",
					zap.String("user_id", scope.UserID.String()),
					zap.Int64("club_id", scope.ClubID),
					zap.String("role", string(scope.Role)),
					zap.String("capability", string(capability)),
				)
			}
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Role does not grant this action"))
			return
		}

		c.Next()
	}
}
