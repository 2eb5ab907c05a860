// FILE: djangoauth/pbkdf2.go
package djangoauth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Django pbkdf2_sha256 parameters
const (
	Algorithm         = "pbkdf2_sha256"
	DefaultIterations = 180000
	KeyLength         = 32
)

// hashParams holds configurable PBKDF2 parameters
type hashParams struct {
	iterations uint32
}

// Option configures PBKDF2 hashing parameters
type Option func(*hashParams)

// WithIterations sets the PBKDF2 iteration count; zero keeps the default
func WithIterations(n uint32) Option {
	return func(p *hashParams) {
		if n > 0 {
			p.iterations = n
		}
	}
}

// EncodePassword encodes password in Django's pbkdf2_sha256 format.
// The salt must not contain the '$' field delimiter.
func EncodePassword(password, salt string, opts ...Option) (string, error) {
	if strings.ContainsRune(salt, '$') {
		return "", ErrInvalidSalt
	}

	params := &hashParams{
		iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(params)
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), int(params.iterations), KeyLength, sha256.New)
	digest := base64.StdEncoding.EncodeToString(key)

	return fmt.Sprintf("%s$%d$%s$%s", Algorithm, params.iterations, salt, digest), nil
}

// Authenticate verifies password against a Django-managed encoded password.
// It returns (false, nil) on a mismatch and an error only when the encoding
// itself is malformed or uses an unsupported algorithm.
func Authenticate(password, encodedPassword string) (bool, error) {
	// Fields are algorithm$iterations$salt$digest. A fifth split element
	// collects any stray trailing content, which makes the final comparison
	// fail rather than corrupting the digest field.
	parts := strings.SplitN(encodedPassword, "$", 5)
	if len(parts) < 4 {
		return false, ErrInvalidEncodedPassword
	}

	algorithm, iterText, salt := parts[0], parts[1], parts[2]

	if algorithm != Algorithm {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}

	iterations, err := strconv.ParseUint(iterText, 10, 32)
	if err != nil {
		return false, fmt.Errorf("%w: iteration count %q", ErrInvalidEncodedPassword, iterText)
	}

	encoded, err := EncodePassword(password, salt, WithIterations(uint32(iterations)))
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(encoded), []byte(encodedPassword)) == 1, nil
}
