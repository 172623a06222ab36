package auth

import "errors"

// User-facing messages are Indonesian, matching the admin frontend.
var (
	ErrWrongUsername   = errors.New("Username salah")
	ErrWrongPassword   = errors.New("Password salah")
	ErrTooManyAttempts = errors.New("Terlalu banyak percobaan login, coba lagi nanti")
)
