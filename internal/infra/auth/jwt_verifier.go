package auth

import (
	"context"
	"time"

	"allserve/internal/domain/service"
	"allserve/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier is a TokenVerifier for HS256 tokens signed with a shared secret.
// The uid is carried in the "sub" claim.
type JWTVerifier struct {
	secret []byte
}

var _ service.TokenVerifier = (*JWTVerifier)(nil)

// NewJWTVerifier is the constructor for JWTVerifier.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &JWTVerifier{secret: []byte(secret)}, nil
}

// VerifyToken checks signature and expiry and returns the subject.
func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("token carries no subject")
	}

	return claims.Subject, nil
}

// IssueToken signs a token for uid valid for ttl. Used to mint development credentials.
func (v *JWTVerifier) IssueToken(uid string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
