package proxy

import (
	"testing"

	"github.com/ygrebnov/proxy/source"
)

type benchContract interface {
	ID() string
	Enabled() bool
	SetEnabled(bool)
	Name() string
	SetName(string)
	Retries() int
	SetRetries(int)
}

var benchSource = source.Map(map[string]any{
	"ID":      "bench",
	"Enabled": true,
	"Name":    "primary",
	"Retries": 3,
})

// BenchmarkCreateProxy measures the cached path: validation plus cache
// lookup plus binding; synthesis happens once on the first iteration.
func BenchmarkCreateProxy(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := CreateProxy[benchContract](benchSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstanceGet(b *testing.B) {
	p, err := CreateProxy[benchContract](benchSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Get("Name"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstanceSet(b *testing.B) {
	p, err := CreateProxy[benchContract](benchSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Set("Retries", i); err != nil {
			b.Fatal(err)
		}
	}
}
