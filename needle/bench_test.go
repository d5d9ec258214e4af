package needle_test

import (
	"testing"

	"github.com/katalvlaran/buffon/needle"
)

// benchmarkDropN drops n needles per iteration with the default geometry.
// It resets the timer after generator construction and fails on unexpected errors.
func benchmarkDropN(b *testing.B, n int) {
	gen, err := needle.NewGenerator(needle.DefaultOptions(), 1)
	if err != nil {
		b.Fatalf("NewGenerator failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err = gen.DropN(n); err != nil {
			b.Fatalf("DropN failed: %v", err)
		}
	}
}

// BenchmarkDropN_Small benchmarks 100-needle drops.
func BenchmarkDropN_Small(b *testing.B) {
	benchmarkDropN(b, 100)
}

// BenchmarkDropN_Medium benchmarks 10,000-needle drops.
func BenchmarkDropN_Medium(b *testing.B) {
	benchmarkDropN(b, 10000)
}

// BenchmarkDrop benchmarks a single needle draw (three uniforms + mod).
func BenchmarkDrop(b *testing.B) {
	gen, err := needle.NewGenerator(needle.DefaultOptions(), 1)
	if err != nil {
		b.Fatalf("NewGenerator failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Drop()
	}
}
