package named

import "errors"

// Sentinel errors returned by Collection construction and lookups.
//
// Construction wraps these with context, so compare with errors.Is:
//
//	_, err := named.New(values, getName)
//	if errors.Is(err, named.ErrDuplicateKey) {
//	    // two values resolved to the same name (or default slot)
//	}
var (
	// ErrNilValues is returned by New when the values slice is nil.
	// An empty (non-nil) slice is valid and produces an empty collection.
	ErrNilValues = errors.New("named: values must not be nil")

	// ErrNilGetName is returned by New when the name-extraction function
	// is nil.
	ErrNilGetName = errors.New("named: name function must not be nil")

	// ErrDuplicateKey is returned by strict construction when two values
	// resolve to the default slot, or to the same name under the active
	// comparer.
	ErrDuplicateKey = errors.New("named: duplicate key")

	// ErrNotFound is returned by GetOrFail when no value exists for the
	// resolved name, default or otherwise.
	ErrNotFound = errors.New("named: value not found")
)
