package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-weeklist/internal/services"
)

const (
	principalCtxKey = "principal"
	tokenCookie     = "token"
)

// HandleAuthMiddleware decodes the bearer credential into the
// authenticated principal and attaches it to the request context.
// The token is taken from the Authorization header, falling back to
// the session cookie set by login.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		h.logger.Warn().Msg("missing credentials")
		abort(c, newUnauthorizedError("please log in again"))
		return
	}

	principal, err := h.auth.VerifyToken(token)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to verify token")
		abort(c, newUnauthorizedError("please log in again"))
		return
	}

	c.Set(principalCtxKey, *principal)
	c.Next()
}

func bearerToken(c *gin.Context) string {
	const bearerPrefix = "Bearer"

	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == bearerPrefix {
			return parts[1]
		}
		return ""
	}

	token, err := c.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func principalFromContext(c *gin.Context) (services.Principal, bool) {
	value, exists := c.Get(principalCtxKey)
	if !exists {
		return services.Principal{}, false
	}
	principal, ok := value.(services.Principal)
	return principal, ok
}

// mustPrincipal aborts with 401 when the middleware didn't run.
func (h *handlerImpl) mustPrincipal(c *gin.Context) (services.Principal, bool) {
	principal, ok := principalFromContext(c)
	if !ok {
		h.logger.Error().Msg("no principal found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return services.Principal{}, false
	}
	return principal, true
}
