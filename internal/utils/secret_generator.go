package utils

import (
	"crypto/rand"
	"io"
	"strings"
)

const alphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

// GenerateSecret returns a random url-safe string used to key answer tokens
// when none is configured.
func GenerateSecret(length int) (string, error) {
	bytes := make([]byte, length)

	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(length)

	for _, b := range bytes {
		builder.WriteByte(alphabet[b&63])
	}

	return builder.String(), nil
}
