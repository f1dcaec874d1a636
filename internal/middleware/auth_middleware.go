package middleware

import (
	"net/http"
	"strings"

	"campusmarket/internal/utils"
	"campusmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer JWT and sets user context
func AuthRequired(secret string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, utils.BearerTokenPrefix)
		if tokenString == authHeader {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "bearer token required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			if log != nil {
				log.WithContext(c.Request.Context()).WithError(err).Debug("token rejected")
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", utils.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(utils.ContextUserID, claims.Subject)
		c.Set(utils.ContextUserType, claims.UserType)
		actor := claims.Email
		if actor == "" {
			actor = claims.Subject
		}
		c.Set(utils.ContextActor, actor)

		c.Next()
	}
}

// AdminRequired ensures user is an admin. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get(utils.ContextUserType)
		if !exists {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if userTypeStr, ok := userType.(string); !ok || userTypeStr != utils.UserTypeAdmin {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
