package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blogapi/internal/service"
)

const principalKey = "principal"

// Principal is the authenticated identity derived from a valid token.
// It lives only for the duration of request handling.
type Principal struct {
	Token string // the full Authorization header value
	Sub   string // user id from the token's subject claim
}

// Auth inspects the Authorization header. A request without the header
// passes through unauthenticated; handlers that need a principal answer
// that case themselves. A header that is not exactly two
// space-separated parts, or whose token fails verification, is rejected
// here with 400 "Not Authorized".
func Auth(auth *service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 {
			c.String(http.StatusBadRequest, "Not Authorized")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			logger.Debug("Rejected bearer token", zap.Error(err))
			c.String(http.StatusBadRequest, "Not Authorized")
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{Token: header, Sub: claims.Subject})
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by Auth, if any.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
