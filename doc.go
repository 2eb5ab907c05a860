// FILE: djangoauth/doc.go
package djangoauth

/*
Package djangoauth encodes and verifies passwords using Django's default
password-storage scheme: PBKDF2-HMAC-SHA256 with the textual encoding

	pbkdf2_sha256$<iterations>$<salt>$<base64 digest>

Hashes produced here verify under Django, and hashes produced by Django
verify here.

# Encoding

Standalone encoding with the default iteration count (180000):

	encoded, err := djangoauth.EncodePassword("password123", "btQDcwXF2RoK6Q")

	// With a custom iteration count
	encoded, err := djangoauth.EncodePassword("password123", "btQDcwXF2RoK6Q",
		djangoauth.WithIterations(260000))

The salt is caller-supplied and must not contain the '$' delimiter. Salt
generation is the caller's responsibility.

# Verification

	ok, err := djangoauth.Authenticate("password123", encoded)

Verification re-derives the digest from the stored parameters and compares in
constant time. A wrong password yields (false, nil); a malformed or
unsupported encoding yields an error.

# Configured hasher

A Hasher carries a fixed iteration count across calls:

	h := djangoauth.NewHasher(djangoauth.WithIterations(260000))
	encoded, err := h.EncodePassword("password123", salt)
	ok, err := h.Authenticate("password123", encoded)

Only the pbkdf2_sha256 hasher is supported. Django's alternative hashers
(bcrypt, argon2, scrypt) are out of scope.
*/
