package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
	"github.com/Jupiter-12/kanban/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

const userContextKey = "authUser"

// AuthMiddleware validates the bearer token and stores the resolved user in
// the request context. Handlers behind it read the user with CurrentUser.
func AuthMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		tokenString := BearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
			)
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrUserDisabled) {
				c.AbortWithStatusJSON(
					http.StatusForbidden,
					apierrors.CreateError(http.StatusForbidden, apierrors.MsgUserDisabled, lang),
				)
				return
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, or "".
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) domain.User {
	if value, exists := c.Get(userContextKey); exists {
		if user, ok := value.(domain.User); ok {
			return user
		}
	}
	return domain.User{}
}
