package id

import (
	"strings"

	"github.com/google/uuid"
)

// RefLen is the length of a reference built by NewRef with a three-letter tag.
const RefLen = 3 + 1 + 32

// NewID32 returns a random (v4) UUID as 32 lowercase hex characters, no hyphens.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewRef returns a public reference such as "DEP-3f9a6a1b3d544fbe8b3a6b3e8d6b2c88".
// tag is upper-cased.
func NewRef(tag string) string {
	return strings.ToUpper(tag) + "-" + NewID32()
}

// SplitRef returns the tag of a reference built by NewRef.
func SplitRef(ref string) (tag string, ok bool) {
	tag, hex, found := strings.Cut(ref, "-")
	if !found || tag == "" || tag != strings.ToUpper(tag) || !Valid(hex) {
		return "", false
	}
	return tag, true
}

// Valid reports whether s looks like a value produced by NewID32.
func Valid(s string) bool {
	if len(s) != 32 {
		return false
	}
	u, err := uuid.Parse(s)
	return err == nil && u.Version() == 4 && strings.ToLower(s) == s
}
