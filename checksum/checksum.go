// Package checksum content-addresses migration statement text so the
// migration manager can detect tampering with a stored history record
// before trusting it for rollback.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Algorithm is the hash algorithm prefix. Storing it alongside the digest
// admits future algorithm evolution without a migration of the history
// table itself.
const Algorithm = "sha256"

// Compute returns the "<algorithm>.<hex digest>" checksum of content.
func Compute(content string) string {
	sum := sha256.Sum256([]byte(content))
	return Algorithm + "." + hex.EncodeToString(sum[:])
}

// Parse splits a checksum into its algorithm and digest at the first "."
// separator. It returns an error if there is no separator or if either
// side of it is empty.
func Parse(checksum string) (algorithm, digest string, err error) {
	parts := strings.SplitN(checksum, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("checksum: malformed value %q", checksum)
	}
	return parts[0], parts[1], nil
}

// Verify reports whether checksum is the checksum of content. It is a pure
// function of its two arguments: same content and stored checksum always
// agree or disagree the same way.
func Verify(content, checksum string) bool {
	algorithm, _, err := Parse(checksum)
	if err != nil {
		return false
	}
	if algorithm != Algorithm {
		return false
	}
	return Compute(content) == checksum
}
