package service

import (
	"context"
)

// TokenVerifier resolves a bearer token into the caller's uid.
type TokenVerifier interface {
	// VerifyToken returns the uid carried by a valid token, or an error.
	VerifyToken(ctx context.Context, token string) (string, error)
}
