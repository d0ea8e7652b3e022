package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/RuchDB/ruchdb/alloc"
	"github.com/RuchDB/ruchdb/bytebuf"
	"github.com/RuchDB/ruchdb/testutil"
	"github.com/RuchDB/ruchdb/zmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressible(n int) []byte {
	return []byte(strings.Repeat("ruchdb value ", n/13+1)[:n])
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":        {},
		"small":        []byte("x"),
		"compressible": compressible(4096),
		"random":       testutil.NewRNG(4711).Bytes(4096),
	}

	for _, c := range []Codec{None, LZ4, ZSTD} {
		for name, src := range inputs {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				block := bytebuf.New()
				defer block.Release()
				require.NoError(t, AppendBlock(block, src, c))

				out := bytebuf.New()
				defer out.Release()
				n, err := AppendDecoded(out, block.Bytes(), c)
				require.NoError(t, err)

				assert.Equal(t, block.Len(), n)
				assert.Equal(t, string(src), out.String())
			})
		}
	}
}

func TestAppendBlock_Compresses(t *testing.T) {
	src := compressible(8192)

	for _, c := range []Codec{LZ4, ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			block := bytebuf.New()
			defer block.Release()
			require.NoError(t, AppendBlock(block, src, c))

			p := block.Bytes()
			assert.Equal(t, uint32(len(src)), binary.LittleEndian.Uint32(p[0:]))
			assert.NotZero(t, binary.LittleEndian.Uint32(p[4:]))
			assert.Less(t, block.Len(), len(src))
		})
	}
}

func TestAppendBlock_StoresIncompressible(t *testing.T) {
	src := testutil.NewRNG(1).Bytes(1024)

	for _, c := range []Codec{None, LZ4, ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			block := bytebuf.FromString("prefix")
			defer block.Release()
			require.NoError(t, AppendBlock(block, src, c))

			p := block.Bytes()[len("prefix"):]
			assert.Len(t, p, HeaderSize+len(src))
			assert.Zero(t, binary.LittleEndian.Uint32(p[4:]))
			assert.Equal(t, src, p[HeaderSize:])
		})
	}
}

func TestAppendBlock_UnknownCodec(t *testing.T) {
	block := bytebuf.New()
	defer block.Release()

	err := AppendBlock(block, []byte("abc"), Codec(9))
	assert.ErrorIs(t, err, ErrUnknownCodec)
	assert.True(t, block.IsEmpty())
	assert.Equal(t, "codec(9)", Codec(9).String())
}

func TestAppendDecoded_Corrupt(t *testing.T) {
	good := bytebuf.New()
	defer good.Release()
	require.NoError(t, AppendBlock(good, compressible(2048), LZ4))

	garbled := good.ToBytes()
	for i := HeaderSize; i < len(garbled); i++ {
		garbled[i] = 0xff
	}

	tests := []struct {
		name  string
		block []byte
		codec Codec
		want  error
	}{
		{"short header", []byte{1, 2, 3}, LZ4, ErrCorrupt},
		{"truncated stored", []byte{10, 0, 0, 0, 0, 0, 0, 0, 'a'}, None, ErrCorrupt},
		{"truncated packed", good.Bytes()[:good.Len()-1], LZ4, ErrCorrupt},
		{"garbled lz4", garbled, LZ4, ErrCorrupt},
		{"garbled zstd", garbled, ZSTD, ErrCorrupt},
		{"unknown codec", good.Bytes(), Codec(7), ErrUnknownCodec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bytebuf.FromString("keep")
			defer out.Release()

			_, err := AppendDecoded(out, tt.block, tt.codec)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, "keep", out.String())
		})
	}
}

func TestAppendDecoded_ImplausibleRawSize(t *testing.T) {
	raw := alloc.New(alloc.WithMemoryLimit(1 << 20))
	out := bytebuf.NewWith(zmem.New(raw), 4)
	defer out.Release()
	out.AppendString("keep")

	block := make([]byte, HeaderSize+1)
	binary.LittleEndian.PutUint32(block[0:], math.MaxUint32)
	binary.LittleEndian.PutUint32(block[4:], 1)

	_, err := AppendDecoded(out, block, LZ4)
	require.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, "keep", out.String())
	assert.Less(t, raw.PeakMemoryUsage(), int64(1<<10))
}

func TestBlockWriter(t *testing.T) {
	rng := testutil.NewRNG(4711)
	src := append(compressible(10_000), rng.Bytes(3000)...)

	for _, c := range []Codec{None, LZ4, ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			var sink bytes.Buffer
			bw := NewBlockWriter(&sink, c, 1024)

			for _, chunk := range rng.Chunks(src, 700) {
				n, err := bw.Write(chunk)
				require.NoError(t, err)
				require.Equal(t, len(chunk), n)
			}
			require.NoError(t, bw.Close())
			assert.Equal(t, int64(sink.Len()), bw.BytesWritten())

			out := bytebuf.New()
			defer out.Release()
			require.NoError(t, DecodeAll(out, sink.Bytes(), c))
			assert.Equal(t, src, out.ToBytes())
		})
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestBlockWriter_WriteError(t *testing.T) {
	bw := NewBlockWriter(errWriter{}, None, 4)

	n, err := bw.Write([]byte("0123456789"))
	require.Error(t, err)
	assert.Equal(t, 4, n)
	assert.Error(t, bw.Close())
}

func TestNewBlockWriter_DefaultBlockSize(t *testing.T) {
	bw := NewBlockWriter(&bytes.Buffer{}, LZ4, 0)
	defer bw.Close()

	assert.Equal(t, DefaultBlockSize, bw.blockSize)
	assert.GreaterOrEqual(t, bw.staging.Cap(), DefaultBlockSize)
}

func BenchmarkAppendBlock(b *testing.B) {
	src := compressible(64 * 1024)
	for _, c := range []Codec{LZ4, ZSTD} {
		b.Run(c.String(), func(b *testing.B) {
			block := bytebuf.WithCapacity(len(src))
			defer block.Release()

			b.SetBytes(int64(len(src)))
			for b.Loop() {
				block.Clear()
				_ = AppendBlock(block, src, c)
			}
		})
	}
}
