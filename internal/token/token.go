// Package token generates opaque session tokens.
package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Length is the fixed token length.
	Length = 20
	// Alphabet is the 62-character token alphabet.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Generator produces random session tokens.
type Generator struct{}

// NewGenerator creates a token Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a random string of Length characters drawn uniformly
// from Alphabet, giving a 62^20 keyspace.
func (g *Generator) Generate() (string, error) {
	max := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, Length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf), nil
}
