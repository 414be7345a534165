// Package bytebuffer provides a small growable, cursor-based byte buffer
// with typed little-endian primitives, in the spirit of the hand-rolled
// FastRead/FastWrite helpers in razzie/go-doboz's common.go.
package bytebuffer

import (
	"encoding/binary"
	"fmt"
)

// Buffer is an in-memory byte sequence with a read/write cursor.
// Writes at the cursor append when the cursor is at the end, and
// overwrite in place otherwise; reads advance the cursor.
type Buffer struct {
	data []byte
	pos  int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromBytes wraps an existing byte slice for reading.
func NewFromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the full backing slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Seek moves the cursor to an absolute offset.
func (b *Buffer) Seek(pos int) {
	b.pos = pos
}

// Tell returns the current cursor position.
func (b *Buffer) Tell() int {
	return b.pos
}

// Reset clears the buffer and rewinds the cursor.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.pos = 0
}

func (b *Buffer) ensure(n int) {
	end := b.pos + n
	if end <= len(b.data) {
		return
	}
	grown := make([]byte, end)
	copy(grown, b.data)
	b.data = grown
}

// WriteBytes writes raw bytes at the cursor and advances it.
func (b *Buffer) WriteBytes(p []byte) {
	b.ensure(len(p))
	copy(b.data[b.pos:], p)
	b.pos += len(p)
}

// WriteByte writes a single unsigned byte. Implements io.ByteWriter.
func (b *Buffer) WriteByte(v byte) error {
	b.ensure(1)
	b.data[b.pos] = v
	b.pos++
	return nil
}

// WriteUint8 validates v fits in a byte and writes it.
func (b *Buffer) WriteUint8(v int) error {
	if v < 0 || v > 0xFF {
		return fmt.Errorf("bytebuffer: value %d does not fit in a byte", v)
	}
	return b.WriteByte(byte(v))
}

// WriteInt16 writes a signed 16-bit little-endian integer.
func (b *Buffer) WriteInt16(v int16) {
	b.ensure(2)
	binary.LittleEndian.PutUint16(b.data[b.pos:], uint16(v))
	b.pos += 2
}

// WriteUint16 writes an unsigned 16-bit little-endian integer.
func (b *Buffer) WriteUint16(v uint16) {
	b.ensure(2)
	binary.LittleEndian.PutUint16(b.data[b.pos:], v)
	b.pos += 2
}

// WriteInt32 writes a signed 32-bit little-endian integer.
func (b *Buffer) WriteInt32(v int32) {
	b.ensure(4)
	binary.LittleEndian.PutUint32(b.data[b.pos:], uint32(v))
	b.pos += 4
}

// WriteUint32 writes an unsigned 32-bit little-endian integer.
func (b *Buffer) WriteUint32(v uint32) {
	b.ensure(4)
	binary.LittleEndian.PutUint32(b.data[b.pos:], v)
	b.pos += 4
}

// WriteUint64 writes an unsigned 64-bit little-endian integer.
func (b *Buffer) WriteUint64(v uint64) {
	b.ensure(8)
	binary.LittleEndian.PutUint64(b.data[b.pos:], v)
	b.pos += 8
}

// WriteInt64 writes a signed 64-bit little-endian integer.
func (b *Buffer) WriteInt64(v int64) {
	b.WriteUint64(uint64(v))
}

// ReadByte reads a single unsigned byte. Implements io.ByteReader.
func (b *Buffer) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, fmt.Errorf("bytebuffer: read past end of buffer")
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

// ReadInt16 reads a signed 16-bit little-endian integer.
func (b *Buffer) ReadInt16() int16 {
	v := int16(binary.LittleEndian.Uint16(b.data[b.pos:]))
	b.pos += 2
	return v
}

// ReadUint16 reads an unsigned 16-bit little-endian integer.
func (b *Buffer) ReadUint16() uint16 {
	v := binary.LittleEndian.Uint16(b.data[b.pos:])
	b.pos += 2
	return v
}

// ReadInt32 reads a signed 32-bit little-endian integer.
func (b *Buffer) ReadInt32() int32 {
	v := int32(binary.LittleEndian.Uint32(b.data[b.pos:]))
	b.pos += 4
	return v
}

// ReadUint32 reads an unsigned 32-bit little-endian integer.
func (b *Buffer) ReadUint32() uint32 {
	v := binary.LittleEndian.Uint32(b.data[b.pos:])
	b.pos += 4
	return v
}

// ReadUint64 reads an unsigned 64-bit little-endian integer.
func (b *Buffer) ReadUint64() uint64 {
	v := binary.LittleEndian.Uint64(b.data[b.pos:])
	b.pos += 8
	return v
}

// ReadInt64 reads a signed 64-bit little-endian integer.
func (b *Buffer) ReadInt64() int64 {
	return int64(b.ReadUint64())
}

// ReadBytes reads n raw bytes and advances the cursor.
func (b *Buffer) ReadBytes(n int) []byte {
	v := b.data[b.pos : b.pos+n]
	b.pos += n
	return v
}

// LittleEndian is reexported so callers that already hold a []byte slice
// (e.g. a view into a memory-mapped file) can decode primitives without
// staging them through a Buffer, matching the direct encoding/binary use
// in razzie/go-doboz's common.go (FastRead/FastWrite).
var LittleEndian = binary.LittleEndian
