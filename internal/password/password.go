// Package password provides the pluggable password hashing schemes.
package password

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Scheme names accepted by New.
const (
	SchemeBcrypt = "bcrypt"
	SchemeLegacy = "legacy"
)

// ErrMismatch is returned by Compare when the password does not match the
// stored hash.
var ErrMismatch = errors.New("password does not match")

// Hasher hashes passwords and compares them against stored hashes.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// New returns the Hasher for the named scheme. Bcrypt is the default for
// new deployments; legacy exists only for databases imported from the
// original system.
func New(scheme string) (Hasher, error) {
	switch scheme {
	case SchemeBcrypt, "":
		return &BcryptHasher{cost: bcrypt.DefaultCost}, nil
	case SchemeLegacy:
		return &LegacyHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// BcryptHasher is the default scheme: salted, slow, per-hash cost.
type BcryptHasher struct {
	cost int
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}

// LegacyHasher reproduces the original deployment's scheme:
// base64(md5(password)), unsalted and fast. Known weak; kept only for
// byte-compatibility with existing password_hash columns.
type LegacyHasher struct{}

func (h *LegacyHasher) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (h *LegacyHasher) Compare(hash, password string) error {
	computed, _ := h.Hash(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) != 1 {
		return ErrMismatch
	}
	return nil
}
