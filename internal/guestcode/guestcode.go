// Package guestcode generates the short shareable codes that identify an
// invitation. Codes avoid visually confusable characters (I, O, 0, 1) so
// they survive being read aloud or retyped from a WhatsApp message.
package guestcode

import (
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// Alphabet has 32 symbols, so a byte modulo len(Alphabet) stays uniform.
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	Length   = 8

	// MaxAttempts bounds the collision retry loop in GenerateUnique.
	MaxAttempts = 10
)

// ErrExhausted is returned when MaxAttempts candidates in a row already
// exist. With 32^8 possible codes this only happens when something is
// badly wrong, so creation fails instead of risking a duplicate.
var ErrExhausted = errors.New("guest code generation exhausted")

// Generate returns a random Length-character code. Uniqueness is not
// guaranteed; callers must check against the store.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}

// GenerateUnique draws candidates until exists reports a free one, up to
// MaxAttempts. The check is best-effort; the storage-layer unique index on
// the code column remains the authoritative guard against races.
func GenerateUnique(exists func(code string) (bool, error)) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		code, err := Generate()
		if err != nil {
			return "", err
		}
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}
