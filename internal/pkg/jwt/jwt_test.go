//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		have, want Role
		ok         bool
	}{
		{RoleAdmin, RoleViewer, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleOperator, RoleViewer, true},
		{RoleOperator, RoleAdmin, false},
		{RoleViewer, RoleOperator, false},
		{Role("root"), RoleViewer, false},
		{RoleAdmin, Role("root"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.have)+">="+string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.have.AtLeast(tt.want))
		})
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)

	token, err := svc.GenerateToken("ops@example.com", RoleOperator)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Operator)
	assert.Equal(t, RoleOperator, claims.Role)
	assert.Equal(t, "ops@example.com", claims.Subject)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	svc := NewService("secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		old := NewService("secret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := old.GenerateToken("ops@example.com", RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken("ops@example.com", RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := svc.GenerateToken("ops@example.com", Role("root"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{Operator: "ops", Role: RoleAdmin}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
