// ABOUTME: Benchmarks for the in-memory cache implementation
// ABOUTME: Measures Get/Set throughput under sequential and parallel load

package memory

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func BenchmarkMemoryCache_Set(b *testing.B) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()
	value := []byte("benchmark value of a realistic size for a cached search page")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Set(ctx, fmt.Sprintf("key-%d", i), value, time.Hour)
	}
}

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()
	cache.Set(ctx, "key", []byte("benchmark value"), time.Hour)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(ctx, "key")
	}
}

func BenchmarkMemoryCache_Parallel(b *testing.B) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()
	cache.Set(ctx, "shared", []byte("shared value"), time.Hour)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%10 == 0 {
				cache.Set(ctx, "shared", []byte("updated value"), time.Hour)
			} else {
				cache.Get(ctx, "shared")
			}
			i++
		}
	})
}
