// FILE: djangoauth/error.go
package djangoauth

import (
	"errors"
)

// Encoding errors
var (
	ErrInvalidSalt = errors.New("salt contains dollar sign ($)")
)

// Verification errors
var (
	ErrInvalidEncodedPassword = errors.New("invalid encoded password")
	ErrUnsupportedAlgorithm   = errors.New("algorithm is not supported")
)
