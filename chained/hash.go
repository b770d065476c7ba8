package chained

import (
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	prime32 = 0xfffffffb // Just the last 32-bit prime number

	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
	MaxCapacity       = 1 << 30 // Largest capacity hint NewHashTable accepts. The table itself may grow beyond it
)

// ErrInvalidArgument is returned by NewHashTable when capacity or load factor are out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// NewHashTableDefault creates a new hash table with capacity 16 and load factor 0.75.
func NewHashTableDefault() *HashTable {
	t, err := NewHashTable(DefaultCapacity, DefaultLoadFactor)
	if err != nil {
		panic(err)
	}
	return t
}

// NewHashTable creates a new hash table. Capacity is a hint for the initial buckets count, it is rounded up to the
// nearest power of 2. Must be in range [1, MaxCapacity].
//
// Load factor is the maximum fraction of entries to buckets before the table grows. Must be in range (0,1].
func NewHashTable(capacity int, loadFactor float64) (*HashTable, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: capacity must be in range [1, %d], got %d", ErrInvalidArgument, MaxCapacity, capacity)
	}
	if math.IsNaN(loadFactor) || loadFactor <= 0 || loadFactor > 1 {
		return nil, fmt.Errorf("%w: loadFactor must be in range (0, 1], got %v", ErrInvalidArgument, loadFactor)
	}

	c := roundPow2(capacity)
	return &HashTable{
		Hasher:     defaultHasher,
		loadFactor: loadFactor,
		threshold:  thresholdFor(c, loadFactor),
		buckets:    make([]*bentry, c),
	}, nil
}

// HashTable is a separate chaining hash table that doubles its buckets array once the number of entries exceeds
// threshold, which is floor(capacity * loadFactor). Capacity is always a power of 2, so the bucket index is
// calculated as hash & (capacity-1). The table never shrinks.
//
// HashTable is not safe for concurrent use. Growth replaces the whole buckets array, so even Get calls must be
// guarded by the caller's lock when other goroutines may write.
type HashTable struct {
	// Hasher calculates a key hash. May be replaced only while the table is empty.
	Hasher func(b []byte) uint32

	loadFactor float64
	threshold  int
	size       int
	grows      int
	buckets    []*bentry
}

// Set sets a value for a key. If the key already exists, it replaces the value and returns the previous one and true.
// Otherwise, it inserts a new key-value pair, grows the table if needed and returns nil and false.
// The key slice is stored as is and must not be modified afterwards.
func (t *HashTable) Set(key []byte, value any) (any, bool) {
	hsh := t.Hasher(key)
	if e := lookup(t, hsh, key); e != nil {
		prev := e.value
		e.value = value
		return prev, true
	}

	insert(t, hsh, key, value)
	for t.size > t.threshold {
		grow(t)
	}
	return nil, false
}

// Get returns a value for a key. If the key does not exist, it returns nil and false.
func (t *HashTable) Get(key []byte) (any, bool) {
	if e := lookup(t, t.Hasher(key), key); e != nil {
		return e.value, true
	}
	return nil, false
}

// Delete removes a key and returns its value and true. If the key does not exist, it returns nil and false.
// Capacity stays the same.
func (t *HashTable) Delete(key []byte) (any, bool) {
	if e := remove(t, t.Hasher(key), key); e != nil {
		return e.value, true
	}
	return nil, false
}

// Range calls fn for every entry in bucket order until fn returns false.
func (t *HashTable) Range(fn func(key []byte, value any) bool) {
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Len returns the number of elements in the hash table.
func (t *HashTable) Len() int {
	return t.size
}

// Cap returns the buckets count of the hash table.
func (t *HashTable) Cap() int {
	return len(t.buckets)
}

// Threshold returns the elements count the table may hold before the next growth.
func (t *HashTable) Threshold() int {
	return t.threshold
}

func (t *HashTable) LoadFactor() float64 {
	return t.loadFactor
}

// Grows returns how many times the table has doubled since creation.
func (t *HashTable) Grows() int {
	return t.grows
}

// CapacityFor returns the capacity to pass to NewHashTable so that inserting the given number of entries never
// makes the table grow. Load factor must be in range (0,1].
func CapacityFor(entries int, loadFactor float64) int {
	c := 1
	for thresholdFor(c, loadFactor) < entries && c < MaxCapacity {
		c <<= 1
	}
	return c
}

func defaultHasher(b []byte) uint32 {
	// fold 64-bit hash to 32-bit
	return uint32(xxhash.Sum64(b) % prime32)
}
