package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPair(t *testing.T) {
	t.Setenv("JWT_SECRET", "clave-de-prueba")

	pair, err := GenerateTokenPair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	access, err := VerifyToken(pair.Access, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), access.UserID)
	assert.Equal(t, TokenAccess, access.TokenType)
	assert.NotEmpty(t, access.ID)

	refresh, err := VerifyToken(pair.Refresh, TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refresh.UserID)
	// Cada token lleva su propio JTI
	assert.NotEqual(t, access.ID, refresh.ID)
}

func TestVerifyTokenRechazaTipoEquivocado(t *testing.T) {
	t.Setenv("JWT_SECRET", "clave-de-prueba")

	pair, err := GenerateTokenPair(7)
	require.NoError(t, err)

	_, err = VerifyToken(pair.Access, TokenRefresh)
	assert.ErrorIs(t, err, ErrTokenInvalido)
	_, err = VerifyToken(pair.Refresh, TokenAccess)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestVerifyTokenConOtraFirma(t *testing.T) {
	t.Setenv("JWT_SECRET", "clave-original")
	pair, err := GenerateTokenPair(7)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "clave-distinta")
	_, err = VerifyToken(pair.Access, TokenAccess)
	assert.Error(t, err)
}

func TestSecretoObligatorio(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateTokenPair(1)
	assert.Error(t, err)
	_, err = VerifyToken("lo-que-sea", TokenAccess)
	assert.Error(t, err)
}
