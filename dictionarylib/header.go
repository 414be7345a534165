package dictionarylib

import (
	"bytes"
	"fmt"

	"github.com/WorksApplications/chikkarpy/bytebuffer"
)

const (
	headerVersionSize     = 8
	headerCreateTimeSize  = 8
	headerDescriptionSize = 256
	// HeaderSize is the fixed on-disk size of the dictionary header.
	HeaderSize = headerVersionSize + headerCreateTimeSize + headerDescriptionSize
)

// Header is the fixed-size record at the start of every dictionary
// file: version magic, creation timestamp, free-text description.
type Header struct {
	Version    uint64
	CreateTime int64
	Description string
}

// ReadHeader decodes a Header from bytes starting at offset. The
// description is the UTF-8 text up to the first NUL within the next 256
// bytes, or the full 256 bytes if no NUL appears.
func ReadHeader(data []byte, offset int) Header {
	buf := bytebuffer.NewFromBytes(data)
	buf.Seek(offset)
	version := buf.ReadUint64()
	createTime := buf.ReadInt64()
	descBytes := buf.ReadBytes(headerDescriptionSize)

	end := bytes.IndexByte(descBytes, 0)
	if end < 0 {
		end = len(descBytes)
	}
	return Header{
		Version:     version,
		CreateTime:  createTime,
		Description: string(descBytes[:end]),
	}
}

// Bytes serializes the header into its 272-byte on-disk form.
func (h Header) Bytes() ([]byte, error) {
	desc := []byte(h.Description)
	if len(desc) > headerDescriptionSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrDescriptionTooLong, len(desc))
	}

	buf := bytebuffer.New()
	buf.WriteUint64(h.Version)
	buf.WriteInt64(h.CreateTime)
	padded := make([]byte, headerDescriptionSize)
	copy(padded, desc)
	buf.WriteBytes(padded)
	return buf.Bytes(), nil
}
