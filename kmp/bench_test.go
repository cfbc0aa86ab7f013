package kmp_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/kmpcycle/kmp"
)

// benchmarkBuild runs Build on s and checks the verdict on every iteration.
func benchmarkBuild(b *testing.B, s string, want bool) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := kmp.Build(s).IsCyclic(); got != want {
			b.Fatalf("IsCyclic = %v, want %v", got, want)
		}
	}
}

// BenchmarkBuild_Periodic uses a long perfect repetition (no fallbacks).
func BenchmarkBuild_Periodic(b *testing.B) {
	benchmarkBuild(b, strings.Repeat("abcdefgh", 4096), true)
}

// BenchmarkBuild_FallbackHeavy uses a^k b blocks, which force long fallback chains.
func BenchmarkBuild_FallbackHeavy(b *testing.B) {
	benchmarkBuild(b, strings.Repeat(strings.Repeat("a", 63)+"b", 512)+"a", false)
}

// BenchmarkBuild_Unicode measures rune decoding overhead on multi-byte input.
func BenchmarkBuild_Unicode(b *testing.B) {
	benchmarkBuild(b, strings.Repeat("日本語", 8192), true)
}
