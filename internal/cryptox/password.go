// Package cryptox implements salted password hashing for user credentials.
//
// Hashes use argon2id with a random per-user salt. The encoded form is
//
//	argon2id$<base64 salt>$<base64 hash>
//
// and is the only thing ever persisted; the raw password never leaves the
// registration/login path.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
)

const (
	saltSize = 16

	// argon2id parameters.
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

var b64 = base64.RawStdEncoding

// HashPassword derives a salted hash of password and returns its encoded
// form for storage.
func HashPassword(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(saltSize)
	hash := derive(password, salt)
	return fmt.Sprintf("argon2id$%s$%s", b64.EncodeToString(salt), b64.EncodeToString(hash)), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// The comparison is constant-time. A malformed encoded value never matches.
func VerifyPassword(password []byte, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return false
	}

	salt, err := b64.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := b64.DecodeString(parts[2])
	if err != nil {
		return false
	}

	got := derive(password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}
