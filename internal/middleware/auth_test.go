package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blogapi/internal/models"
	"blogapi/internal/service"
)

func newProbeRouter(auth *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", Auth(auth, zap.NewNop()), func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, p.Sub)
	})
	return r
}

func probe(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_NoHeaderPassesThrough(t *testing.T) {
	r := newProbeRouter(service.NewAuthService("secret"))

	w := probe(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "anonymous", w.Body.String())
}

func TestAuth_MalformedHeaderRejected(t *testing.T) {
	r := newProbeRouter(service.NewAuthService("secret"))

	for _, header := range []string{"justonetoken", "Bearer too many parts"} {
		w := probe(r, header)
		require.Equal(t, http.StatusBadRequest, w.Code, "header %q", header)
		require.Equal(t, "Not Authorized", w.Body.String())
	}
}

func TestAuth_InvalidTokenRejected(t *testing.T) {
	r := newProbeRouter(service.NewAuthService("secret"))

	w := probe(r, "Bearer garbage")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Not Authorized", w.Body.String())
}

func TestAuth_WrongSecretRejected(t *testing.T) {
	r := newProbeRouter(service.NewAuthService("secret"))

	tok, err := service.NewAuthService("other-secret").GenerateToken("u1")
	require.NoError(t, err)

	w := probe(r, "Bearer "+tok)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_ExpiredTokenRejected(t *testing.T) {
	r := newProbeRouter(service.NewAuthService("secret"))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tok, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	w := probe(r, "Bearer "+tok)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Not Authorized", w.Body.String())
}

func TestAuth_ValidTokenSetsPrincipal(t *testing.T) {
	auth := service.NewAuthService("secret")
	r := newProbeRouter(auth)

	tok, err := auth.GenerateToken("user-42")
	require.NoError(t, err)

	w := probe(r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-42", w.Body.String())
}
