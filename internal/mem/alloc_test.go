package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf), "capacity must be clipped for size %d", size)
		assert.True(t, IsAligned(buf), "size %d should be aligned to %d", size, Alignment)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAlloc(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		for _, n := range []int{1, 7, 8, 9, 100} {
			s := Alloc[float64](n)
			assert.Len(t, s, n)
			assert.Equal(t, n, cap(s))
			assert.True(t, IsAligned(s))
			for _, v := range s {
				assert.Zero(t, v)
			}
		}
	})

	t.Run("uint16", func(t *testing.T) {
		s := Alloc[uint16](33)
		assert.Len(t, s, 33)
		assert.True(t, IsAligned(s))
		s[32] = 7
		assert.Equal(t, uint16(7), s[32])
	})

	t.Run("named type", func(t *testing.T) {
		type celsius float32
		s := Alloc[celsius](4)
		assert.Len(t, s, 4)
		assert.True(t, IsAligned(s))
	})

	assert.Nil(t, Alloc[int32](0))
	assert.Nil(t, Alloc[int32](-3))
}

func TestIsAligned(t *testing.T) {
	assert.True(t, IsAligned([]int(nil)))

	s := Alloc[float64](16)
	assert.True(t, IsAligned(s))
	assert.False(t, IsAligned(s[1:]))
}

func BenchmarkAlloc(b *testing.B) {
	sizes := []int{16, 64, 256, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Alloc[float64](size)
			}
		})
	}
}
