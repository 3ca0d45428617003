package util

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ResponsesFingerprint derives a stable hex digest from a learner name and
// an answer set. Map iteration order is randomized in Go, so the entries are
// sorted by question id before hashing; identical requests always produce
// the same fingerprint.
func ResponsesFingerprint(learnerName string, responses map[string]string) string {
	keys := make([]string, 0, len(responses))
	for k := range responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(learnerName)
	for _, k := range keys {
		b.WriteByte('\n')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(responses[k])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
