package chained

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTrace(t *testing.T) {
	t.Run("default table; should reproduce doubling progression", func(t *testing.T) {
		expect := []Transition{
			{0, 16, 12},
			{13, 32, 24},
			{25, 64, 48},
			{49, 128, 96},
			{97, 256, 192},
			{193, 512, 384},
			{385, 1024, 768},
			{769, 2048, 1536},
			{1537, 4096, 3072},
			{3073, 8192, 6144},
			{6145, 16384, 12288},
			{12289, 32768, 24576},
			{24577, 65536, 49152},
			{49153, 131072, 98304},
			{98305, 262144, 196608},
		}

		res := Trace(NewHashTableDefault(), 98305)

		assert.Equal(t, expect, res)
	})

	t.Run("no inserts; should return only initial state", func(t *testing.T) {
		res := Trace(NewHashTableDefault(), 0)

		assert.Equal(t, []Transition{{0, 16, 12}}, res)
	})

	t.Run("presized table; should not grow", func(t *testing.T) {
		table, err := NewHashTable(CapacityFor(1000, 0.5), 0.5)
		require.NoError(t, err)

		res := Trace(table, 1000)

		assert.Equal(t, []Transition{{0, 2048, 1024}}, res)
		assert.Equal(t, 1000, table.Len())
	})

	t.Run("trace; should store integer values", func(t *testing.T) {
		table := NewHashTableDefault()

		Trace(table, 30)

		for i := 0; i < 30; i++ {
			v, ok := table.Get(EncodeInt(i))
			assert.True(t, ok)
			assert.Equal(t, i, v)
		}
	})
}

func TestEncodeInt(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02}, EncodeInt(0x0102))
	assert.NotEqual(t, EncodeInt(1), EncodeInt(256))
}
