package chained

import "encoding/binary"

// Transition is a table state observed right after an insertion made it grow.
type Transition struct {
	Inserts   int // Entries count in the table right after the growth
	Capacity  int
	Threshold int
}

// Trace inserts integer keys 0..inserts-1 into the table and returns the initial table state followed by every
// growth caused by these insertions. Values are the integers themselves.
func Trace(table *HashTable, inserts int) []Transition {
	res := []Transition{{Inserts: table.Len(), Capacity: table.Cap(), Threshold: table.Threshold()}}
	previous := table.Cap()
	for i := 0; i < inserts; i++ {
		table.Set(EncodeInt(i), i)
		if c := table.Cap(); c != previous {
			res = append(res, Transition{Inserts: table.Len(), Capacity: c, Threshold: table.Threshold()})
			previous = c
		}
	}
	return res
}

// EncodeInt returns the 8-byte big-endian representation of i used as a table key.
func EncodeInt(i int) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i))
	return b[:]
}
