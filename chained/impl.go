package chained

import (
	"math"
	"math/bits"
	"slices"
)

type bentry struct {
	hash  uint32
	key   []byte
	value any
	next  *bentry
}

// insert appends a new entry to the end of the bucket chain. It does not check if the key already exists.
func insert(table *HashTable, hsh uint32, key []byte, value any) *bentry {
	e := &bentry{hash: hsh, key: key, value: value}
	link(table.buckets, e)
	table.size++
	return e
}

func lookup(table *HashTable, hsh uint32, key []byte) *bentry {
	for e := table.buckets[bucketIndex(hsh, len(table.buckets))]; e != nil; e = e.next {
		if e.hash == hsh && slices.Equal(e.key, key) {
			return e
		}
	}
	return nil
}

// remove unlinks an entry from its bucket chain and returns it, or nil if the key is not found.
func remove(table *HashTable, hsh uint32, key []byte) *bentry {
	p := &table.buckets[bucketIndex(hsh, len(table.buckets))]
	for ; *p != nil; p = &(*p).next {
		e := *p
		if e.hash == hsh && slices.Equal(e.key, key) {
			*p = e.next
			e.next = nil
			table.size--
			return e
		}
	}
	return nil
}

// grow doubles the buckets array and relinks every entry to the bucket its cached hash points to in the new array.
// Entries count stays the same.
func grow(table *HashTable) {
	buckets := make([]*bentry, len(table.buckets)*2)
	for _, e := range table.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			link(buckets, e)
			e = next
		}
	}

	table.buckets = buckets
	table.threshold = thresholdFor(len(buckets), table.loadFactor)
	table.grows++
}

// link appends an entry to the tail of the chain in buckets the entry hash points to.
func link(buckets []*bentry, e *bentry) {
	p := &buckets[bucketIndex(e.hash, len(buckets))]
	for *p != nil {
		p = &(*p).next
	}
	*p = e
}

// bucketIndex is hsh modulo capacity. Capacity must be a power of 2.
func bucketIndex(hsh uint32, capacity int) int {
	return int(hsh & uint32(capacity-1))
}

func thresholdFor(capacity int, loadFactor float64) int {
	return int(math.Floor(float64(capacity) * loadFactor))
}

// roundPow2 returns the smallest power of 2 that is >= n. n must be positive.
func roundPow2(n int) int {
	return 1 << bits.Len(uint(n-1))
}
