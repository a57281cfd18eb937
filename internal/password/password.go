// Package password derives and checks the PBKDF2-SHA512 password hashes
// stored on domain.User, and generates the salts and one-time
// authentication tokens that accompany them.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 210_000

	keyLength       = sha512.Size // 128 hex characters
	saltLength      = 32          // 64 hex characters
	authTokenLength = 16          // 32 hex characters
)

var (
	// ErrMismatch is returned by Compare when the password does not match.
	ErrMismatch = errors.New("password does not match")

	// ErrInvalidSalt is returned when a salt is not valid hex.
	ErrInvalidSalt = errors.New("invalid salt")
)

// Verifier compares a stored hash and salt with a plaintext candidate.
type Verifier interface {
	// Compare returns nil on a match and ErrMismatch otherwise.
	Compare(hash, salt, password string) error
}

// Hasher derives PBKDF2-SHA512 hashes. The zero value uses DefaultIterations.
type Hasher struct {
	Iterations int
}

// NewHasher creates a Hasher with the given work factor. Values below one
// select DefaultIterations.
func NewHasher(iterations int) *Hasher {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	return &Hasher{Iterations: iterations}
}

func (h *Hasher) iterations() int {
	if h == nil || h.Iterations < 1 {
		return DefaultIterations
	}
	return h.Iterations
}

// Hash derives the hex hash of password with the given hex salt.
func (h *Hasher) Hash(password, salt string) (string, error) {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return "", ErrInvalidSalt
	}
	key := pbkdf2.Key([]byte(password), saltBytes, h.iterations(), keyLength, sha512.New)
	return hex.EncodeToString(key), nil
}

// Compare implements Verifier in constant time.
func (h *Hasher) Compare(hash, salt, password string) error {
	candidate, err := h.Hash(password, salt)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) != 1 {
		return ErrMismatch
	}
	return nil
}

// NewSalt returns a random salt as 64 lowercase hex characters.
func NewSalt() (string, error) {
	return randomHex(saltLength)
}

// NewAuthToken returns a random activation or reset token as 32 lowercase
// hex characters.
func NewAuthToken() (string, error) {
	return randomHex(authTokenLength)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
