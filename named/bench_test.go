package named_test

import (
	"fmt"
	"testing"

	"github.com/rocklib/go-collections/named"
)

// makeEndpoints creates n uniquely named endpoints plus one default.
func makeEndpoints(n int) []endpoint {
	values := make([]endpoint, 0, n+1)
	values = append(values, endpoint{Name: "", URL: "https://default"})
	for i := 0; i < n; i++ {
		values = append(values, endpoint{Name: fmt.Sprintf("svc-%d", i)})
	}
	return values
}

func BenchmarkNew(b *testing.B) {
	values := makeEndpoints(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := named.New(values, endpointName); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	c := named.MustNew(makeEndpoints(1_000), endpointName)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("SVC-500") // case-folded lookup
	}
}

func BenchmarkGetDefault(b *testing.B) {
	c := named.MustNew(makeEndpoints(1_000), endpointName)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("")
	}
}

func BenchmarkAll(b *testing.B) {
	c := named.MustNew(makeEndpoints(1_000), endpointName)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.All()
	}
}
