package service

// TokenGenerator produces the opaque secrets used for verification and reset
// links. Values must be cryptographically random, globally unique, and
// non-sequential; no uniqueness check against the store is performed (the
// store-level unique constraint is the defense-in-depth backstop).
type TokenGenerator interface {
	// NewToken returns a fresh opaque token value.
	NewToken() string
}
