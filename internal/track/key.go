package track

import "strings"

// Key builds a composite subject key from stable identifiers. Parts are
// joined with ':'. Discord snowflakes never contain it, so two logically
// distinct subjects cannot collide.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
