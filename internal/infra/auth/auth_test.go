package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"allserve/config"
	"allserve/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func TestJWTVerifier_IssueAndVerify(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token, err := verifier.IssueToken("user-1", time.Minute)
	require.NoError(t, err)

	uid, err := verifier.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	other, err := NewJWTVerifier("another_secret_key_very_long_for_testing")
	require.NoError(t, err)
	foreign, err := other.IssueToken("user-1", time.Minute)
	require.NoError(t, err)

	expired, err := verifier.IssueToken("user-1", -time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := verifier.IssueToken("", time.Minute)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":       "clearly-not-a-jwt-token-format",
		"wrong secret":  foreign,
		"expired":       expired,
		"no expiry":     noExpiry,
		"empty subject": noSubject,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			uid, err := verifier.VerifyToken(context.Background(), token)
			assert.Error(t, err)
			assert.Empty(t, uid)
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("")
	assert.Error(t, err)
}

type stubIDTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s stubIDTokenVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier(t *testing.T) {
	ctx := context.Background()

	uid, err := NewFirebaseVerifier(stubIDTokenVerifier{token: &firebaseauth.Token{UID: "uid-1"}}).VerifyToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)

	_, err = NewFirebaseVerifier(stubIDTokenVerifier{err: errors.New("expired")}).VerifyToken(ctx, "tok")
	assert.ErrorContains(t, err, "expired")

	_, err = NewFirebaseVerifier(stubIDTokenVerifier{}).VerifyToken(ctx, "")
	assert.Error(t, err)
}

func TestNewTokenVerifier_Selection(t *testing.T) {
	params := VerifierParams{
		Ctx:    context.Background(),
		Config: &config.Config{Auth: &config.AuthConfig{Provider: "jwt", JWTSecret: testSecret}},
		Firebase: func() (*firebase.App, error) {
			return nil, errors.New("firebase must not be initialized")
		},
		Logger: slog.New(slog.DiscardHandler),
	}

	verifier, err := NewTokenVerifier(params)
	require.NoError(t, err)
	assert.IsType(t, &JWTVerifier{}, verifier)

	params.Config.Auth.Provider = "firebase"
	_, err = NewTokenVerifier(params)
	assert.ErrorContains(t, err, "firebase must not be initialized")

	params.Config.Auth.Provider = "ldap"
	_, err = NewTokenVerifier(params)
	assert.ErrorContains(t, err, "unknown auth provider")
}
