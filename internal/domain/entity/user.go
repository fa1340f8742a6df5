package entity

// User represents an account that can own recipes and log in.
type User struct {
	ID    int64  // Database identity.
	Name  string // The user's display name.
	Email string // The user's login identifier, unique across the system.

	// PasswordHash is the stored credential. Modern rows hold a bcrypt hash;
	// rows imported from the legacy system may still hold a plaintext secret
	// until their first successful login migrates them.
	PasswordHash string
}
