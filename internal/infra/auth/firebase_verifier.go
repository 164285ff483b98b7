package auth

import (
	"context"

	"allserve/internal/domain/service"
	"allserve/internal/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the subset of *firebaseauth.Client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier verifies Firebase ID tokens issued to the project.
func NewFirebaseVerifier(client idTokenVerifier) service.TokenVerifier {
	return &firebaseVerifier{client: client}
}

// VerifyToken returns the uid of a valid Firebase ID token.
func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.New("empty token")
	}

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify ID token")
	}
	if decoded.UID == "" {
		return "", errors.New("ID token carries no uid")
	}

	return decoded.UID, nil
}
