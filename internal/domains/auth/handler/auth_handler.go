package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"classweb-backend/internal/domains/auth"
	"classweb-backend/internal/shared/response"
	"classweb-backend/pkg/logger"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.Is(err, auth.ErrWrongUsername), errors.Is(err, auth.ErrWrongPassword):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, auth.ErrTooManyAttempts):
		response.TooManyRequests(c, err.Error())
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("login failed", err)
		response.InternalServerError(c, err.Error())
	}
}
