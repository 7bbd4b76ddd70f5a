package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, tokenHash, err := GenerateToken()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(token, TokenPrefix))
	assert.NoError(t, ValidateTokenFormat(token))
	assert.Equal(t, HashToken(token), tokenHash)
	assert.Len(t, tokenHash, 64, "hash must be hex-encoded SHA-256")
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, _, err := GenerateToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}

func TestValidateTokenFormat(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", "st_dGVzdHRva2VuZGF0YXRlc3R0b2tlbmRhdGE", false},
		{"missing prefix", "dGVzdHRva2Vu", true},
		{"wrong prefix", "sk_dGVzdHRva2Vu", true},
		{"prefix only", "st_", true},
		{"invalid base64", "st_not!valid!base64!", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTokenFormat(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("st_abc"), HashToken("st_abc"))
	assert.NotEqual(t, HashToken("st_abc"), HashToken("st_abd"))
}
