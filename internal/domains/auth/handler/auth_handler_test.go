package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classweb-backend/internal/domains/auth"
)

type fakeAuthService struct {
	username string
	password string
}

func (f *fakeAuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Username != f.username {
		return nil, auth.ErrWrongUsername
	}
	if req.Password != f.password {
		return nil, auth.ErrWrongPassword
	}
	return &auth.LoginResponse{Token: "signed-token"}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(&fakeAuthService{username: "admin", password: "rahasia123"})

	router := gin.New()
	router.POST("/auth/login", h.Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_ReturnsToken(t *testing.T) {
	w := postLogin(newTestRouter(), `{"username":"admin","password":"rahasia123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	w := postLogin(newTestRouter(), `{"username":"admin","password":"salah"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Password salah", body["error"])
}

func TestLogin_WrongUsername(t *testing.T) {
	w := postLogin(newTestRouter(), `{"username":"bukan-admin","password":"rahasia123"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Username salah", body["error"])
}

func TestLogin_MissingBody(t *testing.T) {
	w := postLogin(newTestRouter(), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
