package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"classweb-backend/internal/config"
	"classweb-backend/internal/domains/auth"
	"classweb-backend/pkg/cache"
	"classweb-backend/pkg/jwt"
	"classweb-backend/pkg/logger"
)

const (
	maxAttempts   = 5
	attemptWindow = 15 * time.Minute
)

// authService checks the submitted credentials against the single admin
// account configured from the environment. Failed attempts are counted
// in Redis per username; the counter fails open when Redis is down so a
// cache outage cannot lock the admin out.
type authService struct {
	cfg   config.AuthConfig
	jwt   *jwt.Manager
	cache cache.Cache
}

func NewAuthService(cfg config.AuthConfig, manager *jwt.Manager, c cache.Cache) auth.Service {
	return &authService{cfg: cfg, jwt: manager, cache: c}
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if blocked := s.registerAttempt(ctx, req.Username); blocked {
		return nil, auth.ErrTooManyAttempts
	}

	if req.Username != s.cfg.AdminUsername {
		return nil, auth.ErrWrongUsername
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		return nil, auth.ErrWrongPassword
	}

	s.clearAttempts(ctx, req.Username)

	token, err := s.jwt.GenerateToken(req.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &auth.LoginResponse{Token: token}, nil
}

func attemptsKey(username string) string {
	return "auth:attempts:" + username
}

// registerAttempt counts the attempt and reports whether the caller has
// exceeded the window limit. The count is cleared on successful login.
func (s *authService) registerAttempt(ctx context.Context, username string) bool {
	key := attemptsKey(username)

	n, err := s.cache.Increment(ctx, key)
	if err != nil {
		logger.Error("login attempt counter unavailable", err)
		return false
	}

	if n == 1 {
		if err := s.cache.Expire(ctx, key, attemptWindow); err != nil {
			logger.Error("login attempt counter expire failed", err)
		}
	}

	return n > maxAttempts
}

func (s *authService) clearAttempts(ctx context.Context, username string) {
	if err := s.cache.Delete(ctx, attemptsKey(username)); err != nil {
		logger.Error("login attempt counter clear failed", err)
	}
}
