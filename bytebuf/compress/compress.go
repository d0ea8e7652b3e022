package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/RuchDB/ruchdb/bytebuf"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the block compression algorithm.
type Codec uint8

const (
	// None stores blocks uncompressed.
	None Codec = 0
	// LZ4 is fast block compression, suited to hot data.
	LZ4 Codec = 1
	// ZSTD has a better ratio, suited to cold data.
	ZSTD Codec = 2
)

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

// HeaderSize is the size of a block header.
const HeaderSize = 8

// lz4MaxRatio bounds how much one packed LZ4 byte can expand: a run length
// extension byte adds at most 255 bytes of output.
const lz4MaxRatio = 255

var (
	// ErrCorrupt is returned for truncated or inconsistent blocks.
	ErrCorrupt = errors.New("compress: corrupt block")
	// ErrUnknownCodec is returned for a codec outside None, LZ4 and ZSTD.
	ErrUnknownCodec = errors.New("compress: unknown codec")
	// ErrTooLarge is returned for inputs whose size does not fit a header.
	ErrTooLarge = errors.New("compress: block too large")
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putHeader(p []byte, raw, packed int) {
	binary.LittleEndian.PutUint32(p[0:], uint32(raw))    //nolint:gosec // checked by AppendBlock
	binary.LittleEndian.PutUint32(p[4:], uint32(packed)) //nolint:gosec // packed <= raw
}

// worthIt reports whether packed bytes save enough over raw.
func worthIt(packed, raw int) bool {
	return packed > 0 && float64(packed) <= float64(raw)*0.9
}

// AppendBlock appends src to dst as one framed block.
// src must not alias dst.
func AppendBlock(dst *bytebuf.Buffer, src []byte, c Codec) error {
	if uint64(len(src)) > math.MaxUint32 {
		return ErrTooLarge
	}

	switch c {
	case None:
	case LZ4:
		if len(src) > 0 && appendLZ4(dst, src) {
			return nil
		}
	case ZSTD:
		if len(src) > 0 && appendZSTD(dst, src) {
			return nil
		}
	default:
		return ErrUnknownCodec
	}

	appendStored(dst, src)
	return nil
}

func appendStored(dst *bytebuf.Buffer, src []byte) {
	var hdr [HeaderSize]byte
	putHeader(hdr[:], len(src), 0)

	dst.Reserve(HeaderSize + len(src))
	dst.AppendBytes(hdr[:])
	dst.AppendBytes(src)
}

// appendLZ4 compresses straight into dst and reports whether it kept the result.
func appendLZ4(dst *bytebuf.Buffer, src []byte) bool {
	start := dst.Len()
	dst.AppendPadding(0, HeaderSize+lz4.CompressBlockBound(len(src)))

	out := dst.Bytes()[start:]
	n, err := lz4.CompressBlock(src, out[HeaderSize:], nil)
	if err != nil || !worthIt(n, len(src)) {
		dst.Truncate(start)
		return false
	}

	putHeader(out, len(src), n)
	dst.Truncate(start + HeaderSize + n)
	return true
}

func appendZSTD(dst *bytebuf.Buffer, src []byte) bool {
	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)

	packed := enc.EncodeAll(src, nil)
	if !worthIt(len(packed), len(src)) {
		return false
	}

	var hdr [HeaderSize]byte
	putHeader(hdr[:], len(src), len(packed))

	dst.Reserve(HeaderSize + len(packed))
	dst.AppendBytes(hdr[:])
	dst.AppendBytes(packed)
	return true
}

// AppendDecoded decodes the block at the start of block, appends its raw
// bytes to dst and returns the number of bytes of block consumed.
// On error dst is left unchanged.
func AppendDecoded(dst *bytebuf.Buffer, block []byte, c Codec) (int, error) {
	if len(block) < HeaderSize {
		return 0, ErrCorrupt
	}

	raw := int(binary.LittleEndian.Uint32(block[0:]))
	packed := int(binary.LittleEndian.Uint32(block[4:]))

	if packed == 0 {
		if len(block)-HeaderSize < raw {
			return 0, ErrCorrupt
		}
		dst.AppendBytes(block[HeaderSize : HeaderSize+raw])
		return HeaderSize + raw, nil
	}

	if len(block)-HeaderSize < packed {
		return 0, ErrCorrupt
	}
	data := block[HeaderSize : HeaderSize+packed]

	switch c {
	case LZ4:
		if uint64(raw) > uint64(packed)*lz4MaxRatio {
			return 0, ErrCorrupt
		}
		start := dst.Len()
		dst.AppendPadding(0, raw)
		n, err := lz4.UncompressBlock(data, dst.Bytes()[start:])
		if err != nil {
			dst.Truncate(start)
			return 0, fmt.Errorf("%w: lz4: %w", ErrCorrupt, err)
		}
		if n != raw {
			dst.Truncate(start)
			return 0, ErrCorrupt
		}
	case ZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return 0, fmt.Errorf("%w: zstd: %w", ErrCorrupt, err)
		}
		if len(out) != raw {
			return 0, ErrCorrupt
		}
		dst.AppendBytes(out)
	default:
		return 0, ErrUnknownCodec
	}

	return HeaderSize + packed, nil
}

// DecodeAll decodes every block in data and appends the raw bytes to dst.
func DecodeAll(dst *bytebuf.Buffer, data []byte, c Codec) error {
	for len(data) > 0 {
		n, err := AppendDecoded(dst, data, c)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
