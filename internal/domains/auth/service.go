package auth

import "context"

// Service authenticates the single administrator account.
type Service interface {
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}
