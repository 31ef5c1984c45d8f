package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUserJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(7, time.Hour, key)
	require.NoError(t, err)

	parsed, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*UserClaims)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.ID)

	expired, err := GenerateUserJWT(7, -time.Minute, key)
	require.NoError(t, err)
	_, err = ValidateUserJWT(expired, key)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateUserJWTErrorHidesToken(t *testing.T) {
	token, err := GenerateUserJWT(7, time.Hour, []byte("secret"))
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, []byte("another secret"))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), token)
}
