package normalize

import (
	"crypto/sha256"
	"fmt"
)

// TextHash computes the hex-encoded SHA-256 of in-memory CSV text. Used to
// dedupe dataset loads.
func TextHash(text string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
}
