package bytebuf

import (
	"bytes"
	"testing"

	"github.com/RuchDB/ruchdb/align"
	"github.com/RuchDB/ruchdb/testutil"
	"github.com/stretchr/testify/require"
)

// model mirrors Buffer semantics on a plain slice.
type model []byte

func (m model) replace(offset int, p []byte) model {
	offset = max(offset, 0)
	if len(m) < offset {
		m = append(m, make([]byte, offset-len(m))...)
	}
	if end := offset + len(p); len(m) < end {
		m = append(m, make([]byte, end-len(m))...)
	}
	copy(m[offset:], p)
	return m
}

func (m model) trim(start, end int) model {
	start, end = max(start, 0), min(len(m), end)
	if start >= end {
		return m
	}
	return append(model(nil), m[start:end]...)
}

// step applies one pseudo-random operation to both b and m.
func step(rng *testutil.RNG, b *Buffer, m model) model {
	switch rng.Intn(9) {
	case 0:
		p := rng.Bytes(rng.Intn(40))
		b.AppendBytes(p)
		return append(m, p...)
	case 1:
		s := rng.ASCII(rng.Intn(40))
		b.AppendString(s)
		return append(m, s...)
	case 2:
		if b.Len() > 0 {
			i := rng.Intn(b.Len())
			p := append([]byte(nil), m[i:]...)
			b.AppendBytes(b.Bytes()[i:])
			return append(m, p...)
		}
		return m
	case 3:
		off, p := rng.IntRange(-2, len(m)+16), rng.Bytes(rng.Intn(20))
		b.ReplaceBytes(off, p)
		return m.replace(off, p)
	case 4:
		start, end := rng.IntRange(-2, len(m)+2), rng.IntRange(-2, len(m)+2)
		b.Trim(start, end)
		return m.trim(start, end)
	case 5:
		n := rng.IntRange(-1, len(m)+1)
		b.Truncate(n)
		if n < len(m) {
			return m[:max(n, 0)]
		}
		return m
	case 6:
		v, n := rng.Byte(), rng.Intn(30)
		b.AppendPadding(v, n)
		return append(m, bytes.Repeat([]byte{v}, n)...)
	case 7:
		b.ShrinkToFit()
		return m
	default:
		b.Reserve(rng.Intn(64))
		return m
	}
}

func TestBuffer_MatchesModel(t *testing.T) {
	for name, z := range allocators() {
		t.Run(name, func(t *testing.T) {
			rng := testutil.NewRNG(4711)
			for round := 0; round < 50; round++ {
				b := NewWith(z, rng.Intn(16))
				var m model

				for i := 0; i < 200; i++ {
					m = step(rng, b, m)

					require.Equal(t, string(m), string(b.ToBytes()), "round %d step %d", round, i)
					require.LessOrEqual(t, b.Len(), b.Cap())
					require.Zero(t, uintptr(b.Cap())%align.SysAlign)
				}
				b.Release()
			}
		})
	}
}

func TestBuffer_ChunkedAppend(t *testing.T) {
	rng := testutil.NewRNG(42)
	p := rng.Bytes(10_000)

	b := New()
	defer b.Release()
	for _, c := range rng.Chunks(p, 97) {
		b.AppendBytes(c)
	}

	require.Equal(t, p, b.ToBytes())
	require.Equal(t, int(align.SizeOfSysAligned(uintptr(len(p)))), b.Cap())
}

func FuzzBuffer(f *testing.F) {
	f.Add([]byte("Hello"), []byte(" Rust"), 5, 1, 5)
	f.Add([]byte("Hi"), []byte("X"), 5, 0, 0)
	f.Add([]byte{}, []byte{0xff}, -3, 4, 2)

	f.Fuzz(func(t *testing.T, init, extra []byte, offset, start, end int) {
		offset = offset % 4096

		b := FromBytes(init)
		defer b.Release()
		m := model(append([]byte(nil), init...))

		require.Equal(t, string(m), string(b.ToBytes()))

		b.AppendBytes(extra)
		m = append(m, extra...)
		require.Equal(t, string(m), string(b.ToBytes()))

		b.ReplaceBytes(offset, extra)
		m = m.replace(offset, extra)
		require.Equal(t, string(m), string(b.ToBytes()))

		sub := b.SubRange(start, end)
		want := m.trim(start, end)
		if max(start, 0) >= min(len(m), end) {
			want = nil
		}
		require.Equal(t, string(want), string(sub.ToBytes()))
		sub.Release()

		b.Trim(start, end)
		m = m.trim(start, end)
		require.Equal(t, string(m), string(b.ToBytes()))
		require.LessOrEqual(t, b.Len(), b.Cap())

		c := b.Clone()
		require.True(t, c.Equal(b))
		require.Zero(t, c.Compare(b))
		c.Release()
	})
}
