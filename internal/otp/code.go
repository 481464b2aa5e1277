// Package otp generates one-time passcodes and the digests stored in place of them.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Digits is the length of every issued code.
const Digits = 6

// codeSpace is 10^Digits; rand.Int draws uniformly from [0, codeSpace).
var codeSpace = big.NewInt(1_000_000)

// Generate returns a 6-digit numeric OTP string (e.g. "042917") drawn uniformly using crypto/rand.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", Digits, n.Int64()), nil
}

// Hash returns the hex-encoded SHA-256 digest of code. Stores keep only this value.
func Hash(code string) string {
	h := sha256.Sum256([]byte(code))
	return hex.EncodeToString(h[:])
}
