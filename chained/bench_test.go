package chained

import (
	"fmt"
	"testing"
)

// Entry counts right at and right after a growth boundary of the default table
var insertCounts = []int{24576, 24577, 196608, 196609}

func BenchmarkSet(b *testing.B) {
	for _, count := range insertCounts {
		keys := make([][]byte, count)
		for i := range keys {
			keys[i] = EncodeInt(i)
		}

		b.Run(fmt.Sprintf("autogrow/%d", count), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				table := NewHashTableDefault()
				for i, k := range keys {
					table.Set(k, i)
				}
			}
		})

		b.Run(fmt.Sprintf("presized/%d", count), func(b *testing.B) {
			capacity := CapacityFor(count, DefaultLoadFactor)
			for n := 0; n < b.N; n++ {
				table, err := NewHashTable(capacity, DefaultLoadFactor)
				if err != nil {
					b.Fatal(err)
				}
				for i, k := range keys {
					table.Set(k, i)
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	const count = 1 << 16
	table := NewHashTableDefault()
	keys := make([][]byte, count)
	for i := range keys {
		keys[i] = EncodeInt(i)
		table.Set(keys[i], i)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		table.Get(keys[n%count])
	}
}
