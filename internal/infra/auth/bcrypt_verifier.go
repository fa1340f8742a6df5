// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"recipebox/internal/domain/service"
)

// bcryptHashLength is the length of a standard bcrypt hash string. Anything
// shorter cannot be a valid hash and is treated as legacy plaintext.
const bcryptHashLength = 60

// bcryptPrefixes are the hash version markers this system recognizes.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// bcryptVerifier is a concrete implementation of the CredentialVerifier
// interface using bcrypt, with a plaintext fallback for rows imported from
// the legacy database.
type bcryptVerifier struct {
	cost int
}

// NewBcryptVerifier is the constructor for bcryptVerifier. A cost outside
// bcrypt's supported range falls back to DefaultCredentialCost.
func NewBcryptVerifier(cost int) service.CredentialVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCredentialCost
	}
	return &bcryptVerifier{cost: cost}
}

// DefaultCredentialCost matches the cost the legacy system used when it
// hashed passwords at all.
const DefaultCredentialCost = 12

// Classify determines whether a stored credential is a bcrypt hash or a
// legacy plaintext secret. Classification happens once here; callers branch
// on the tag instead of re-inspecting the string.
func (v *bcryptVerifier) Classify(stored string) service.CredentialFormat {
	if len(stored) < bcryptHashLength {
		return service.FormatLegacyPlain
	}
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return service.FormatBcrypt
		}
	}
	return service.FormatLegacyPlain
}

// Verify checks a candidate secret against a stored credential.
//
// Bcrypt credentials are compared with bcrypt's constant-time check; any
// malformed hash simply fails the comparison. Legacy plaintext credentials
// are compared byte for byte, and a match additionally yields a fresh bcrypt
// hash so the caller can migrate the stored row.
func (v *bcryptVerifier) Verify(stored, candidate string) service.VerifyResult {
	if v.Classify(stored) == service.FormatBcrypt {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate))
		return service.VerifyResult{Match: err == nil}
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) != 1 {
		return service.VerifyResult{}
	}

	newHash, err := v.Hash(candidate)
	if err != nil {
		// The plaintext secret did match; report the match but leave the
		// stored credential alone rather than failing the login.
		return service.VerifyResult{Match: true}
	}

	return service.VerifyResult{Match: true, NeedsRehash: true, NewHash: newHash}
}

// Hash generates a salted bcrypt hash from a plaintext secret.
// bcrypt automatically handles salt generation.
func (v *bcryptVerifier) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	return string(bytes), err
}
