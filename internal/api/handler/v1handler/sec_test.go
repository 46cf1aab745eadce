package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker/internal/api/handler/v1handler"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	})
	signed, err := token.SignedString(priv)
	require.NoError(tb, err)

	return signed
}

func TestAuthenticate_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	ctx, err := sh.Authenticate(context.Background(), tkn)
	require.NoError(t, err)

	got, ok := ctx.Value(v1handler.UserIDKey).(domain.UserID)
	require.True(t, ok)
	require.Equal(t, domain.UserID(uid), got)
}

func TestAuthenticate_RejectsBadTokens(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	now := time.Now()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "signed with a different key",
			token: func(t *testing.T) string {
				other, _ := genRSAKeys(t)

				return signJWTRS256(t, other, uuid.NewString(), now, now.Add(time.Hour))
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-time.Hour))
			},
		},
		{
			name: "subject is not a UUID",
			token: func(t *testing.T) string {
				return signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))
			},
		},
		{
			name: "wrong signing algorithm",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   uuid.NewString(),
					IssuedAt:  jwt.NewNumericDate(now),
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				})
				signed, err := token.SignedString([]byte("secret"))
				require.NoError(t, err)

				return signed
			},
		},
		{
			name: "no expiration claim",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
					Subject:  uuid.NewString(),
					IssuedAt: jwt.NewNumericDate(now),
				})
				signed, err := token.SignedString(priv)
				require.NoError(t, err)

				return signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sh.Authenticate(context.Background(), tt.token(t))
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestMiddleware_MissingToken(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	next := sh.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	var seen domain.UserID
	next := sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = v1handler.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+tkn)
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, domain.UserID(uid), seen)
}
