// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialFormat tags the storage format of a credential. The set is
// closed: a credential is either a recognized bcrypt hash or a plaintext
// secret left over from the legacy system.
type CredentialFormat int

const (
	// FormatLegacyPlain marks a credential stored as plaintext.
	FormatLegacyPlain CredentialFormat = iota

	// FormatBcrypt marks a credential stored as a bcrypt hash.
	FormatBcrypt
)

// VerifyResult reports the outcome of checking a candidate secret against a
// stored credential.
type VerifyResult struct {
	// Match is true when the candidate secret matches the stored credential.
	Match bool

	// NeedsRehash is true when the stored credential matched but is in the
	// legacy plaintext format and must be replaced.
	NeedsRehash bool

	// NewHash carries a freshly computed bcrypt hash of the candidate when
	// NeedsRehash is true, and is empty otherwise.
	NewHash string
}

// CredentialVerifier classifies and verifies stored credentials. It holds no
// mutable state and is safe for concurrent use.
type CredentialVerifier interface {
	// Classify determines the storage format of a stored credential.
	Classify(stored string) CredentialFormat

	// Verify checks a candidate secret against a stored credential. A
	// malformed hash is reported as a non-match, never as an error.
	Verify(stored, candidate string) VerifyResult

	// Hash generates a salted bcrypt hash from a plaintext secret.
	// Never called with an empty secret.
	Hash(secret string) (string, error)
}
