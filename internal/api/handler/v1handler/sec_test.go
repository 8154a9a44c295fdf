package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"curvelab/internal/api/handler/v1handler"
	"curvelab/pkg/domain"
	"curvelab/pkg/serrors"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns a private key and its PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(tb testing.TB, pubPEM string) *v1handler.SecHandler {
	tb.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(tb, err, "NewSecHandler failed")

	return sh
}

func signJWT(tb testing.TB, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	tb.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func validToken(tb testing.TB, priv *rsa.PrivateKey, sub string) string {
	tb.Helper()
	now := time.Now()

	return signJWT(tb, jwt.SigningMethodRS256, priv, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	ctx, err := sh.HandleBearerAuth(context.Background(), validToken(t, priv, uid.String()))
	require.NoError(t, err)

	got, ok := v1handler.UserIDFromContext(ctx)
	require.True(t, ok, "expected userID in context")
	require.Equal(t, domain.UserID(uid), got)
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	privOther, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{name: "other key", token: validToken(t, privOther, uuid.NewString())},
		{name: "expired", token: signJWT(t, jwt.SigningMethodRS256, priv, jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		})},
		{name: "no expiry", token: signJWT(t, jwt.SigningMethodRS256, priv, jwt.RegisteredClaims{
			Subject: uuid.NewString(),
		})},
		{name: "subject is not a uuid", token: validToken(t, priv, "not-a-uuid")},
		{name: "wrong algorithm", token: signJWT(t, jwt.SigningMethodHS256, []byte("secret"), jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})},
		{name: "garbage", token: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), tt.token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}
