package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinKeyLength is the minimum accepted API key length.
const MinKeyLength = 16

// DefaultCost is the bcrypt cost used by HashKey.
const DefaultCost = 12

var (
	ErrInvalidKey  = errors.New("invalid API key")
	ErrKeyTooShort = errors.New("API key must be at least 16 characters")
	ErrKeyTooLong  = errors.New("API key exceeds maximum length of 72 bytes")
)

// HashKey creates a bcrypt hash of an API key.
func HashKey(key string, cost int) (string, error) {
	if len(key) < MinKeyLength {
		return "", ErrKeyTooShort
	}
	// bcrypt has a 72-byte limit
	if len(key) > 72 {
		return "", ErrKeyTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckKey compares an API key with its hash.
func CheckKey(key, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidKey
		}
		return err
	}
	return nil
}

// GenerateKey creates a cryptographically secure random API key.
func GenerateKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
