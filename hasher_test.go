// FILE: djangoauth/hasher_test.go
package djangoauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasher(t *testing.T) {
	h := NewHasher()
	assert.Equal(t, uint32(DefaultIterations), h.Iterations())

	h = NewHasher(WithIterations(260000))
	assert.Equal(t, uint32(260000), h.Iterations())

	// Zero keeps the default rather than requesting zero iterations
	h = NewHasher(WithIterations(0))
	assert.Equal(t, uint32(DefaultIterations), h.Iterations())
}

func TestHasherEncodeAndAuthenticate(t *testing.T) {
	h := NewHasher(WithIterations(1000))

	encoded, err := h.EncodePassword("testpass123", "hasherSalt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "pbkdf2_sha256$1000$"),
		"Hash should carry the configured iteration count, got: %s", encoded)

	ok, err := h.Authenticate("testpass123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Authenticate("wrongpass", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.EncodePassword("testpass123", "bad$salt")
	assert.Equal(t, ErrInvalidSalt, err)
}

func TestHasherVerifiesForeignIterationCounts(t *testing.T) {
	// A hash written under a different iteration setting still verifies
	old, err := EncodePassword("testpass123", "oldSalt", WithIterations(500))
	require.NoError(t, err)

	h := NewHasher(WithIterations(1000))
	ok, err := h.Authenticate("testpass123", old)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ PasswordHasher = NewHasher()

	var h PasswordHasher = NewHasher(WithIterations(1000))

	encoded, err := h.EncodePassword("testpass123", "interfaceSalt")
	require.NoError(t, err)

	ok, err := h.Authenticate("testpass123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}
