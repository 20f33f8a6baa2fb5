// Package named provides an immutable, generic collection of values keyed by
// name, with one designated "default" (unnamed) entry.
//
// # Overview
//
// The central type is [Collection][T], built once from a slice of values and a
// name-extraction function. It resolves an optional caller-supplied name to a
// value, falling back to the default value when no name (or the default name)
// is given:
//
//	endpoints, err := named.New(
//	    []Endpoint{
//	        {Name: "", URL: "https://api.example.com"},
//	        {Name: "backup", URL: "https://backup.example.com"},
//	    },
//	    func(e Endpoint) string { return e.Name },
//	)
//
//	e, ok := endpoints.Get("")        // the default endpoint
//	e, ok  = endpoints.Get("BACKUP")  // case-insensitive by default
//
// # Default value
//
// A value whose extracted name is empty, or equal to the configured default
// name (the literal "default" unless overridden with [WithDefaultName]), fills
// the collection's single default slot. [Collection.IsDefaultName] exposes the
// same predicate so callers can decide whether a supplied name means
// "no name given".
//
// # Name matching
//
// All name matching goes through a pluggable [Comparer]. The default,
// [OrdinalIgnoreCase], matches names case-insensitively; substitute [Ordinal]
// for exact matching or build your own with [FoldComparer].
//
// # Strict and non-strict construction
//
// Strict construction (the default) fails with [ErrDuplicateKey] when two
// values resolve to the default slot or to the same name. Opting into
// [NonStrict] lets the later value silently overwrite the earlier one instead.
//
// # Immutability
//
// A Collection never changes after construction: there is no mutation API and
// every accessor returns a copy, so a constructed collection may be read from
// multiple goroutines without locking.
//
// # Map view
//
// [Collection.AsMap] exposes the same storage as a read-only, map-shaped
// [MapView] whose keys are the names that resolve back to each value, the
// default value reported under the default name.
package named
