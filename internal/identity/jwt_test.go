package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom/internal/dbmysql"
)

const testSecret = "unit-test-secret"

func TestSignAndParseToken(t *testing.T) {
	token, err := SignToken(testSecret, "ext-42", dbmysql.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "ext-42", claims.Subject)
	assert.Equal(t, dbmysql.RoleAdmin, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, "ext-42", dbmysql.RoleMember, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := SignToken(testSecret, "ext-42", dbmysql.RoleMember, -time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	require.Error(t, err)
}

func TestClaimsContextRoundTrip(t *testing.T) {
	ctx := WithClaims(context.Background(), &Claims{Role: dbmysql.RoleMember})
	require.NotNil(t, ClaimsFrom(ctx))
	assert.Nil(t, ClaimsFrom(context.Background()))
}

func TestMiddleware(t *testing.T) {
	token, err := SignToken(testSecret, "ext-42", dbmysql.RoleMember, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantClaims bool
	}{
		{
			name:       "no header passes through without session",
			header:     "",
			wantStatus: http.StatusOK,
			wantClaims: false,
		},
		{
			name:       "valid bearer token",
			header:     "Bearer " + token,
			wantStatus: http.StatusOK,
			wantClaims: true,
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sawClaims bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawClaims = ClaimsFrom(r.Context()) != nil
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/news", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			Middleware(testSecret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantClaims, sawClaims)
			}
		})
	}
}
