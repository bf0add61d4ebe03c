package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateConfirmationCode returns a hex-encoded random code of n bytes of
// entropy. 32 bytes gives the 256 bits the signup flow issues.
func GenerateConfirmationCode(n int) (string, error) {
	if n <= 0 {
		n = 32
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
