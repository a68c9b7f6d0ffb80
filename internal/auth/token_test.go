package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenString, err := GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "requerimentos-api", claims.Issuer)
	assert.Equal(t, "reviewer_auth_token", claims.Subject)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	tokenString, err := GenerateToken()
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}
