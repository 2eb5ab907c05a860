// FILE: djangoauth/hasher.go
package djangoauth

// Hasher encodes and verifies passwords with a fixed iteration count,
// mirroring a Django deployment's PASSWORD_HASHERS configuration.
type Hasher struct {
	iterations uint32
}

// NewHasher creates a hasher with the given options
func NewHasher(opts ...Option) *Hasher {
	params := &hashParams{
		iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(params)
	}

	return &Hasher{
		iterations: params.iterations,
	}
}

// Iterations returns the configured iteration count
func (h *Hasher) Iterations() uint32 {
	return h.iterations
}

// EncodePassword encodes password with the hasher's iteration count
func (h *Hasher) EncodePassword(password, salt string) (string, error) {
	return EncodePassword(password, salt, WithIterations(h.iterations))
}

// Authenticate verifies password against an encoded password. The stored
// iteration count is used for re-derivation, not the hasher's own, so hashes
// written under older iteration settings still verify.
func (h *Hasher) Authenticate(password, encodedPassword string) (bool, error) {
	return Authenticate(password, encodedPassword)
}
