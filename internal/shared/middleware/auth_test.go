package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classweb-backend/pkg/jwt"
)

func newProtectedRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return router
}

func getProtected(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.GenerateToken("admin")
	require.NoError(t, err)

	w := getProtected(newProtectedRouter(manager), "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body["username"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	w := getProtected(newProtectedRouter(manager), "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	w := getProtected(newProtectedRouter(manager), "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := jwt.NewManager("test-secret", -time.Minute)
	token, err := expired.GenerateToken("admin")
	require.NoError(t, err)

	w := getProtected(newProtectedRouter(jwt.NewManager("test-secret", time.Hour)), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	other := jwt.NewManager("other-secret", time.Hour)
	token, err := other.GenerateToken("admin")
	require.NoError(t, err)

	w := getProtected(newProtectedRouter(jwt.NewManager("test-secret", time.Hour)), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
