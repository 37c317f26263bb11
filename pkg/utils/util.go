package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// GenerateBase64Key returns size random bytes, base64 URL-encoded.
func GenerateBase64Key(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("key size must be positive, got %d", size)
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(key), nil
}

// ParseNumericID parses a positive numeric employee or staff id from a path or query value.
func ParseNumericID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
