package named_test

import (
	"testing"

	"github.com/rocklib/go-collections/named"
)

// FuzzNew ensures that non-strict construction from arbitrary names never
// panics and that every supplied name remains resolvable afterwards.
//
// Run with: go test -fuzz=FuzzNew ./named/
func FuzzNew(f *testing.F) {
	f.Add("", "bar")
	f.Add("default", "DEFAULT")
	f.Add("bar", "Bar")
	f.Add("a", "b")

	identity := func(s string) string { return s }

	f.Fuzz(func(t *testing.T, a, b string) {
		c, err := named.New([]string{a, b}, identity, named.NonStrict())
		if err != nil {
			t.Fatalf("non-strict New failed: %v", err)
		}
		// Every supplied name resolves to some value: either its own slot
		// or the slot that overwrote it.
		for _, name := range []string{a, b} {
			if !c.Contains(name) {
				t.Fatalf("Contains(%q) = false after construction", name)
			}
			if _, err := c.GetOrFail(name); err != nil {
				t.Fatalf("GetOrFail(%q) = %v after construction", name, err)
			}
		}
	})
}

// FuzzGet ensures lookups never panic on arbitrary names and stay consistent
// with Contains.
func FuzzGet(f *testing.F) {
	c := named.MustNew(
		[]string{"", "bar", "baz"},
		func(s string) string { return s },
	)

	f.Add("bar")
	f.Add("")
	f.Add("DEFAULT")
	f.Add("missing")

	f.Fuzz(func(t *testing.T, name string) {
		_, ok := c.Get(name)
		if ok != c.Contains(name) {
			t.Fatalf("Get and Contains disagree for %q", name)
		}
		if _, err := c.GetOrFail(name); (err == nil) != ok {
			t.Fatalf("GetOrFail and Get disagree for %q", name)
		}
	})
}
