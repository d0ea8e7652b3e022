// Package compress frames byte strings as optionally compressed blocks and
// decodes them back into a bytebuf.Buffer.
//
// Block format: [raw size uint32][packed size uint32][data...], little endian.
// A packed size of 0 marks a stored block whose data is the raw bytes.
// Blocks that do not shrink below 90% of their raw size are stored.
//
// The codec is not recorded in the block; readers must use the codec the
// blocks were written with.
package compress
