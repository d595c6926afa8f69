package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MakeRandHexString returns a cryptographically random hex string of length n.
// n must be even because every byte encodes to two hex characters.
func MakeRandHexString(n int) (string, error) {
	if n%2 != 0 {
		return "", fmt.Errorf("length must be even, got %d", n)
	}
	b := make([]byte, n/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites the slice contents with zeros. Use it to clear
// passwords and other secrets once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
