package zmem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/RuchDB/ruchdb/align"
	"github.com/RuchDB/ruchdb/alloc"
	"github.com/RuchDB/ruchdb/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocators() map[string]*Allocator {
	return map[string]*Allocator{
		"goheap":  New(alloc.New(alloc.WithHost(alloc.GoHeap()))),
		"offheap": New(alloc.New(alloc.WithHost(alloc.OffHeap()))),
	}
}

func view(p unsafe.Pointer, n uintptr) []byte {
	return unsafe.Slice((*byte)(p), n)
}

func TestAlloc_RoundsUpToWord(t *testing.T) {
	for name, z := range allocators() {
		t.Run(name, func(t *testing.T) {
			body, size := z.Alloc(6)
			require.NotNil(t, body)
			defer z.Free(body)

			assert.Equal(t, align.SizeOfSysAligned(6), size)
			assert.Equal(t, size, z.SizeOf(body))
			assert.Zero(t, uintptr(body)%align.SysAlign)
			if align.WordSize == 8 {
				assert.Equal(t, uintptr(8), size)
			}
		})
	}
}

func TestAlloc_Zero(t *testing.T) {
	for name, z := range allocators() {
		t.Run(name, func(t *testing.T) {
			body, size := z.Alloc(0)
			require.NotNil(t, body)
			assert.Zero(t, size)
			assert.Zero(t, SizeOf(body))
			z.Free(body)
		})
	}
}

func TestAlloc_HeaderOnlyBlockSurvivesGC(t *testing.T) {
	for name, z := range allocators() {
		t.Run(name, func(t *testing.T) {
			bodies := make([]unsafe.Pointer, 256)
			for i := range bodies {
				bodies[i], _ = z.Alloc(0)
			}

			testutil.ChurnHeap(200_000)

			for i, body := range bodies {
				require.Zero(t, SizeOf(body), "block %d", i)

				grown, size := z.Realloc(body, 8)
				require.Equal(t, uintptr(8), size)
				require.Equal(t, size, SizeOf(grown))
				z.Free(grown)
			}
		})
	}
}

func TestAlloc_SurvivesGC(t *testing.T) {
	z := New(alloc.New(alloc.WithHost(alloc.GoHeap())))

	bodies := make([]unsafe.Pointer, 256)
	for i := range bodies {
		bodies[i], _ = z.Alloc(uintptr(i % 24))
		copy(view(bodies[i], SizeOf(bodies[i])), "0123456789abcdefghijklmn")
	}

	testutil.ChurnHeap(200_000)

	for i, body := range bodies {
		n := align.SizeOfSysAligned(uintptr(i % 24))
		require.Equal(t, n, SizeOf(body), "block %d", i)
		require.Equal(t, "0123456789abcdefghijklmn"[:n], string(view(body, n)))
	}
}

func TestAlloc_UnrepresentableSizeExits(t *testing.T) {
	code, stderr := testutil.ExpectExit(t, func() {
		Alloc(^uintptr(0))
	})

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, fmt.Sprintf("memory allocation of %d bytes failed", ^uintptr(0)))
}

func TestAlloc_LargestRepresentableSizeExits(t *testing.T) {
	code, stderr := testutil.ExpectExit(t, func() {
		Alloc(maxBody)
	})

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "bytes failed")
}

func TestRealloc_UnrepresentableSizeExits(t *testing.T) {
	code, stderr := testutil.ExpectExit(t, func() {
		body, _ := Alloc(8)
		Realloc(body, ^uintptr(0)-1)
	})

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "bytes failed")
}

func TestAllocZeroed(t *testing.T) {
	for name, z := range allocators() {
		t.Run(name, func(t *testing.T) {
			body, size := z.AllocZeroed(100)
			defer z.Free(body)

			assert.GreaterOrEqual(t, size, uintptr(100))
			assert.Equal(t, make([]byte, size), view(body, size))
		})
	}
}

func TestRealloc_PreservesContents(t *testing.T) {
	for name, z := range allocators() {
		t.Run(name, func(t *testing.T) {
			body, size := z.Alloc(8)
			copy(view(body, size), "ABCDEFGH")

			body, size = z.Realloc(body, 16)
			defer z.Free(body)

			assert.GreaterOrEqual(t, size, uintptr(16))
			assert.Equal(t, size, SizeOf(body))
			assert.Equal(t, "ABCDEFGH", string(view(body, 8)))
		})
	}
}

func TestRealloc_Shrink(t *testing.T) {
	z := New(nil)

	body, size := z.Alloc(64)
	copy(view(body, size), "0123456789abcdef")

	body, size = z.Realloc(body, 5)
	defer z.Free(body)

	assert.Equal(t, align.SizeOfSysAligned(5), size)
	assert.Equal(t, "01234", string(view(body, 5)))
}

func TestRealloc_Nil(t *testing.T) {
	body, size := Realloc(nil, 10)
	require.NotNil(t, body)
	defer Free(body)

	assert.Equal(t, align.SizeOfSysAligned(10), size)
	assert.Equal(t, size, SizeOf(body))
}

func TestFree_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Free(nil) })
	assert.NotPanics(t, func() { New(nil).Free(nil) })
}

func TestSizeOf_Nil(t *testing.T) {
	assert.Zero(t, SizeOf(nil))
}

func TestHeaderAccounting(t *testing.T) {
	raw := alloc.New(alloc.WithMemoryLimit(1 << 20))
	z := New(raw)

	body, size := z.Alloc(20)
	assert.Equal(t, int64(HeaderSize+size), raw.MemoryUsage())

	body, size = z.Realloc(body, 40)
	assert.Equal(t, int64(HeaderSize+size), raw.MemoryUsage())

	z.Free(body)
	assert.Zero(t, raw.MemoryUsage())
}

func TestNew_DefaultsToDefaultAllocator(t *testing.T) {
	assert.Same(t, alloc.Default(), New(nil).Raw())
	assert.Same(t, alloc.Default(), Default().Raw())
}

func TestPackageFunctions(t *testing.T) {
	body, size := AllocZeroed(3)
	assert.Equal(t, make([]byte, size), view(body, size))
	Free(body)

	body, size = Alloc(33)
	assert.Equal(t, align.SizeOfSysAligned(33), size)
	Free(body)
}

func BenchmarkAllocFree(b *testing.B) {
	z := New(nil)
	b.ReportAllocs()
	for b.Loop() {
		body, _ := z.Alloc(64)
		z.Free(body)
	}
}
