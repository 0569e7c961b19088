package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := HashPassword([]byte("correct horse"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "argon2id$"))

	assert.True(t, VerifyPassword([]byte("correct horse"), encoded))
	assert.False(t, VerifyPassword([]byte("wrong horse"), encoded))
	assert.False(t, VerifyPassword([]byte(""), encoded))
}

func TestHash_SaltedPerCall(t *testing.T) {
	a, err := HashPassword([]byte("pw"))
	require.NoError(t, err)
	b, err := HashPassword([]byte("pw"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "same password must hash differently per salt")
	assert.True(t, VerifyPassword([]byte("pw"), a))
	assert.True(t, VerifyPassword([]byte("pw"), b))
}

func TestVerify_MalformedEncodings(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"md5$abc$def",
		"argon2id$not-base64!$xxx",
		"argon2id$onlyonepart",
	} {
		assert.Falsef(t, VerifyPassword([]byte("pw"), encoded), "encoded=%q", encoded)
	}
}
