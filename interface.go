// FILE: djangoauth/interface.go
package djangoauth

// PasswordHasher defines the password encoding and verification operations
type PasswordHasher interface {
	EncodePassword(password, salt string) (encoded string, err error)
	Authenticate(password, encodedPassword string) (ok bool, err error)
}
