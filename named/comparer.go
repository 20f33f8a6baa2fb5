package named

import "strings"

// Comparer is the pluggable string-equality strategy used for all name
// matching within a [Collection].
//
// Implementations must keep Equal and Fold consistent:
// Equal(a, b) holds exactly when Fold(a) == Fold(b). The folded form is used
// as the internal lookup key, so a stateless Comparer is safe for concurrent
// use.
type Comparer interface {
	// Equal reports whether a and b are the same name.
	Equal(a, b string) bool

	// Fold returns the canonical form of s used for storage and lookup.
	Fold(s string) string
}

// FoldComparer builds a [Comparer] from a canonicalization function.
// Two names compare equal exactly when fold maps them to the same string:
//
//	trimmed := named.FoldComparer(strings.TrimSpace)
//	trimmed.Equal("bar", "  bar ") // → true
func FoldComparer(fold func(string) string) Comparer {
	return foldComparer(fold)
}

type foldComparer func(string) string

func (f foldComparer) Fold(s string) string   { return f(s) }
func (f foldComparer) Equal(a, b string) bool { return f(a) == f(b) }

// Package-level comparers. Both are stateless and immutable.
var (
	// OrdinalIgnoreCase matches names without regard to case.
	// It is the default comparer for new collections.
	OrdinalIgnoreCase = FoldComparer(strings.ToLower)

	// Ordinal matches names exactly, byte for byte.
	Ordinal = FoldComparer(func(s string) string { return s })
)
