// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto"
	"crypto/rand"
	"crypto/sha512"
	"io"

	"planner/config"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Hasher is a concrete implementation of the CredentialHasher interface
// using PBKDF2 with HMAC-SHA512.
type pbkdf2Hasher struct {
	iterations int
	saltLength int
	keyLength  int
	random     io.Reader
}

// NewPBKDF2Hasher builds the hasher from the auth section of the config.
func NewPBKDF2Hasher(cfg *config.Config) (service.CredentialHasher, error) {
	auth := cfg.Auth
	if auth == nil {
		auth = &config.AuthConfig{
			PBKDF2Iterations: config.DefaultPBKDF2Iterations,
			SaltLength:       config.DefaultSaltLength,
			KeyLength:        config.DefaultKeyLength,
		}
	}

	return NewPBKDF2HasherWithParams(auth.PBKDF2Iterations, auth.SaltLength, auth.KeyLength)
}

// NewPBKDF2HasherWithParams is the constructor for pbkdf2Hasher.
func NewPBKDF2HasherWithParams(iterations, saltLength, keyLength int) (service.CredentialHasher, error) {
	hasher, err := newPBKDF2Hasher(iterations, saltLength, keyLength, rand.Reader)
	if err != nil {
		return nil, err
	}

	return hasher, nil
}

func newPBKDF2Hasher(iterations, saltLength, keyLength int, random io.Reader) (*pbkdf2Hasher, error) {
	if iterations <= 0 || saltLength <= 0 || keyLength <= 0 {
		return nil, errors.Errorf("invalid pbkdf2 parameters: iterations=%d saltLength=%d keyLength=%d",
			iterations, saltLength, keyLength)
	}

	return &pbkdf2Hasher{
		iterations: iterations,
		saltLength: saltLength,
		keyLength:  keyLength,
		random:     random,
	}, nil
}

// GenerateSalt reads saltLength bytes from the secure random source.
func (h *pbkdf2Hasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, h.saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return nil, domainerrors.ErrHashingFailed.WithCause(errors.Wrap(err, "read random salt"))
	}

	return salt, nil
}

// DeriveHash runs PBKDF2-HMAC-SHA512 over password and salt.
func (h *pbkdf2Hasher) DeriveHash(password string, salt []byte) ([]byte, error) {
	if !crypto.SHA512.Available() {
		return nil, domainerrors.ErrHashingFailed.WithCause(errors.New("sha512 is unavailable"))
	}
	if len(salt) == 0 {
		return nil, domainerrors.ErrHashingFailed.WithCause(errors.New("empty salt"))
	}

	return pbkdf2.Key([]byte(password), salt, h.iterations, h.keyLength, sha512.New), nil
}
