package compress

import (
	"io"

	"github.com/RuchDB/ruchdb/bytebuf"
)

// DefaultBlockSize is the raw size of a block when none is configured.
const DefaultBlockSize = 256 * 1024

// BlockWriter splits a byte stream into framed blocks and writes them to an
// underlying writer.
type BlockWriter struct {
	w         io.Writer
	codec     Codec
	blockSize int
	staging   *bytebuf.Buffer
	out       *bytebuf.Buffer
	written   int64
}

// NewBlockWriter creates a BlockWriter. A blockSize <= 0 uses DefaultBlockSize.
// Close must be called to flush the last block and release the staging buffers.
func NewBlockWriter(w io.Writer, c Codec, blockSize int) *BlockWriter {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &BlockWriter{
		w:         w,
		codec:     c,
		blockSize: blockSize,
		staging:   bytebuf.WithCapacity(blockSize),
		out:       bytebuf.New(),
	}
}

// Write buffers p, flushing full blocks as needed.
func (bw *BlockWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if bw.staging.Len() >= bw.blockSize {
			if err := bw.Flush(); err != nil {
				return total, err
			}
		}

		n := min(len(p), bw.blockSize-bw.staging.Len())
		bw.staging.AppendBytes(p[:n])
		total += n
		p = p[n:]
	}
	return total, nil
}

// Flush compresses and writes the buffered block, if any.
func (bw *BlockWriter) Flush() error {
	if bw.staging.IsEmpty() {
		return nil
	}

	bw.out.Clear()
	if err := AppendBlock(bw.out, bw.staging.Bytes(), bw.codec); err != nil {
		return err
	}

	n, err := bw.out.WriteTo(bw.w)
	bw.written += n
	if err != nil {
		return err
	}
	bw.staging.Clear()
	return nil
}

// BytesWritten returns the number of framed bytes written so far.
func (bw *BlockWriter) BytesWritten() int64 {
	return bw.written
}

// Close flushes the last block and releases the staging buffers.
// The BlockWriter must not be used afterwards.
func (bw *BlockWriter) Close() error {
	err := bw.Flush()
	bw.staging.Release()
	bw.out.Release()
	return err
}
