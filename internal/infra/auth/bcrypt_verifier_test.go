package auth

import (
	"testing"

	"recipebox/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost keeps bcrypt cheap in tests.
const testCost = bcrypt.MinCost

func TestBcryptVerifier_Classify(t *testing.T) {
	verifier := NewBcryptVerifier(testCost)

	hash, err := verifier.Hash("secret")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		stored   string
		expected service.CredentialFormat
	}{
		{"real bcrypt hash", hash, service.FormatBcrypt},
		{"2a prefix", "$2a$12$" + pad(53), service.FormatBcrypt},
		{"2b prefix", "$2b$12$" + pad(53), service.FormatBcrypt},
		{"2y prefix", "$2y$12$" + pad(53), service.FormatBcrypt},
		{"unsupported version tag", "$2z$12$" + pad(53), service.FormatLegacyPlain},
		{"plaintext", "hunter2", service.FormatLegacyPlain},
		{"empty", "", service.FormatLegacyPlain},
		{"prefix only, too short", "$2a$12$abc", service.FormatLegacyPlain},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, verifier.Classify(tc.stored))
		})
	}
}

func TestBcryptVerifier_VerifyModern(t *testing.T) {
	verifier := NewBcryptVerifier(testCost)

	hash, err := verifier.Hash("correct horse")
	require.NoError(t, err)

	result := verifier.Verify(hash, "correct horse")
	assert.True(t, result.Match)
	assert.False(t, result.NeedsRehash, "a bcrypt credential never needs migration")
	assert.Empty(t, result.NewHash)

	result = verifier.Verify(hash, "wrong horse")
	assert.False(t, result.Match)
	assert.False(t, result.NeedsRehash)
}

func TestBcryptVerifier_VerifyMalformedHash(t *testing.T) {
	verifier := NewBcryptVerifier(testCost)

	// Looks like a hash (right prefix and length) but the payload is garbage.
	// Must be a plain non-match, not an error or a panic.
	malformed := "$2a$12$" + pad(53)
	result := verifier.Verify(malformed, "anything")
	assert.False(t, result.Match)
	assert.False(t, result.NeedsRehash)
}

func TestBcryptVerifier_VerifyLegacyPlaintext(t *testing.T) {
	verifier := NewBcryptVerifier(testCost)

	result := verifier.Verify("hunter2", "hunter2")
	assert.True(t, result.Match)
	assert.True(t, result.NeedsRehash, "a legacy match must request migration")
	require.NotEmpty(t, result.NewHash)

	// The migration hash must verify as a modern credential.
	assert.Equal(t, service.FormatBcrypt, verifier.Classify(result.NewHash))
	upgraded := verifier.Verify(result.NewHash, "hunter2")
	assert.True(t, upgraded.Match)
	assert.False(t, upgraded.NeedsRehash)
}

func TestBcryptVerifier_VerifyLegacyWrongPassword(t *testing.T) {
	verifier := NewBcryptVerifier(testCost)

	result := verifier.Verify("hunter2", "hunter3")
	assert.False(t, result.Match)
	assert.False(t, result.NeedsRehash)
	assert.Empty(t, result.NewHash)
}

func TestBcryptVerifier_HashUsesConfiguredCost(t *testing.T) {
	verifier := NewBcryptVerifier(testCost)

	hash, err := verifier.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, testCost, cost)
}

func TestNewBcryptVerifier_CostOutOfRange(t *testing.T) {
	v, ok := NewBcryptVerifier(0).(*bcryptVerifier)
	require.True(t, ok)
	assert.Equal(t, DefaultCredentialCost, v.cost)

	v, ok = NewBcryptVerifier(99).(*bcryptVerifier)
	require.True(t, ok)
	assert.Equal(t, DefaultCredentialCost, v.cost)
}

// pad builds a filler string of the given length so fabricated credentials
// reach bcrypt's fixed hash length.
func pad(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
