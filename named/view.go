package named

// MapView is a read-only, map-shaped view of a [Collection]. It shares the
// collection's storage rather than copying it, so it is as cheap to create as
// it is safe to discard.
//
// Keys are the names that resolve back to each value: the default value is
// reported under the collection's default name, never under its original
// (possibly empty) spelling.
type MapView[T any] struct {
	c *Collection[T]
}

// AsMap returns a read-only map view over the collection's storage.
func (c *Collection[T]) AsMap() MapView[T] {
	return MapView[T]{c: c}
}

// Get returns the value for name together with a presence flag.
// It is identical to [Collection.Get].
func (v MapView[T]) Get(name string) (T, bool) { return v.c.Get(name) }

// Has reports whether a value exists for name.
// It is identical to [Collection.Contains].
func (v MapView[T]) Has(name string) bool { return v.c.Contains(name) }

// Len returns the number of entries in the view.
func (v MapView[T]) Len() int { return v.c.Count() }

// Keys returns, in iteration order, the name under which each value is
// retrievable: the default name first (when the default slot is occupied),
// then the named values' first-seen spellings in insertion order.
func (v MapView[T]) Keys() []string {
	keys := make([]string, 0, v.c.Count())
	if v.c.hasDefault {
		keys = append(keys, v.c.defaultName)
	}
	keys = append(keys, v.c.names...)
	return keys
}

// Values returns a copy of every value in iteration order.
// It is identical to [Collection.All].
func (v MapView[T]) Values() []T { return v.c.All() }

// Each calls fn(name, value) for every entry, default first.
func (v MapView[T]) Each(fn func(name string, value T)) {
	if v.c.hasDefault {
		fn(v.c.defaultName, v.c.defaultValue)
	}
	for _, name := range v.c.names {
		fn(name, v.c.byName[v.c.cmp.Fold(name)])
	}
}

// ToMap returns a plain map copy of the view, keyed like [MapView.Keys].
// Mutating the result does not affect the collection.
func (v MapView[T]) ToMap() map[string]T {
	out := make(map[string]T, v.c.Count())
	v.Each(func(name string, value T) { out[name] = value })
	return out
}
