package named

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultName is the name under which the default value is stored and
// reported when no other default name is configured.
const DefaultName = "default"

// Collection is an immutable, generic collection of values keyed by name,
// with one designated default (unnamed) slot.
//
// A value whose extracted name is empty, or equal to the default name under
// the active [Comparer], occupies the default slot; every other value is
// stored under its name. Lookups resolve a caller-supplied name to a value,
// falling back to the default value for empty or default names.
//
// A Collection never changes after construction. Accessors return copies, so
// a constructed collection is safe for concurrent reads without locking,
// provided its comparer and element type are themselves read-safe.
type Collection[T any] struct {
	cmp          Comparer
	defaultName  string
	defaultValue T
	hasDefault   bool
	names        []string     // first-seen spelling of each name, insertion order
	byName       map[string]T // keyed by cmp.Fold(name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New builds a Collection from values, using getName to extract each value's
// name. The input is traversed exactly once, in order.
//
// A value whose name satisfies [Collection.IsDefaultName] fills the default
// slot; any other value is stored under its name. In strict mode (the
// default) a second value resolving to the default slot, or to an
// already-used name, fails with [ErrDuplicateKey]; with [NonStrict] the later
// value overwrites the earlier one.
//
// New returns [ErrNilValues] when values is nil and [ErrNilGetName] when
// getName is nil. An empty (non-nil) slice yields a valid empty collection.
func New[T any](values []T, getName func(T) string, opts ...Option) (*Collection[T], error) {
	if values == nil {
		return nil, ErrNilValues
	}
	if getName == nil {
		return nil, ErrNilGetName
	}
	o := buildOptions(opts)
	c := &Collection[T]{
		cmp:         o.cmp,
		defaultName: o.defaultName,
		byName:      make(map[string]T, len(values)),
	}
	for _, v := range values {
		name := getName(v)
		if c.IsDefaultName(name) {
			if c.hasDefault && !o.nonStrict {
				return nil, fmt.Errorf("%w: cannot have more than one default value", ErrDuplicateKey)
			}
			c.defaultValue = v
			c.hasDefault = true
			continue
		}
		key := c.cmp.Fold(name)
		if _, exists := c.byName[key]; exists {
			if !o.nonStrict {
				return nil, fmt.Errorf("%w: cannot have more than one value with the same name: %q", ErrDuplicateKey, name)
			}
		} else {
			c.names = append(c.names, name)
		}
		c.byName[key] = v
	}
	return c, nil
}

// From is an alias for [New]. It reads naturally when the slice expression is
// the focus of the call site:
//
//	c, err := named.From(loadEndpoints(cfg), Endpoint.GetName)
func From[T any](values []T, getName func(T) string, opts ...Option) (*Collection[T], error) {
	return New(values, getName, opts...)
}

// MustNew is like [New] but panics on construction failure.
// Intended for package-level collections built from literals:
//
//	var formats = named.MustNew(allFormats, Format.Name)
func MustNew[T any](values []T, getName func(T) string, opts ...Option) *Collection[T] {
	c, err := New(values, getName, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Empty creates an empty Collection of type T. It never fails.
func Empty[T any](opts ...Option) *Collection[T] {
	o := buildOptions(opts)
	return &Collection[T]{
		cmp:         o.cmp,
		defaultName: o.defaultName,
		byName:      make(map[string]T),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the total number of stored values: the named values, plus one
// if the default slot is occupied.
func (c *Collection[T]) Count() int {
	n := len(c.byName)
	if c.hasDefault {
		n++
	}
	return n
}

// IsEmpty reports whether the collection contains no values.
func (c *Collection[T]) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether the collection has at least one value.
func (c *Collection[T]) IsNotEmpty() bool { return c.Count() > 0 }

// Default returns the default value together with a presence flag.
// Returns the zero value and false when no default value was supplied.
func (c *Collection[T]) Default() (T, bool) {
	return c.defaultValue, c.hasDefault
}

// DefaultName returns the sentinel name that identifies the default value.
func (c *Collection[T]) DefaultName() string { return c.defaultName }

// Comparer returns the string comparer used for name matching.
func (c *Collection[T]) Comparer() Comparer { return c.cmp }

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// IsDefaultName reports whether name addresses the default slot: true when
// name is empty or equal to [Collection.DefaultName] under the active
// comparer. Callers use it to decide whether a supplied name means "no name
// given".
func (c *Collection[T]) IsDefaultName(name string) bool {
	return name == "" || c.cmp.Equal(name, c.defaultName)
}

// Get returns the value for name together with a presence flag.
// A name satisfying [Collection.IsDefaultName] resolves the default slot;
// any other name resolves the named value stored under it.
func (c *Collection[T]) Get(name string) (T, bool) {
	if c.IsDefaultName(name) {
		if !c.hasDefault {
			var zero T
			return zero, false
		}
		return c.defaultValue, true
	}
	v, ok := c.byName[c.cmp.Fold(name)]
	return v, ok
}

// GetOrFail returns the value for name, or an error wrapping [ErrNotFound]
// when the lookup fails. The error says whether the default slot is
// unoccupied or the literal name is absent.
func (c *Collection[T]) GetOrFail(name string) (T, error) {
	v, ok := c.Get(name)
	if ok {
		return v, nil
	}
	var zero T
	if c.IsDefaultName(name) {
		return zero, fmt.Errorf("%w: no default value has been configured", ErrNotFound)
	}
	return zero, fmt.Errorf("%w: no value named %q", ErrNotFound, name)
}

// Contains reports whether a value exists for name.
func (c *Collection[T]) Contains(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of every value: the default value first (when the slot
// is occupied), then the named values in the order their names were first
// inserted. The result is deterministic and unaffected by earlier calls.
func (c *Collection[T]) All() []T {
	out := make([]T, 0, c.Count())
	if c.hasDefault {
		out = append(out, c.defaultValue)
	}
	for _, name := range c.names {
		out = append(out, c.byName[c.cmp.Fold(name)])
	}
	return out
}

// NamedValues returns a copy of the non-default values in insertion order.
func (c *Collection[T]) NamedValues() []T {
	out := make([]T, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[c.cmp.Fold(name)])
	}
	return out
}

// Each calls fn(value, index) for every value, default first.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, v := range c.All() {
		fn(v, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes the collection as a JSON object in iteration order.
// The default value appears under the configured default name, never under
// its original (possibly empty) spelling.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	keys := c.AsMap().Keys()
	vals := c.All()
	for i, name := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON serialises the collection to a JSON object. See
// [Collection.MarshalJSON] for the encoding.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.All())
	}
	return string(b)
}
