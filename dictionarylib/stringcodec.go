package dictionarylib

import (
	"fmt"
	"unicode/utf16"

	"github.com/WorksApplications/chikkarpy/bytebuffer"
)

// maxStringLength is the largest UTF-16 code-unit count the two-byte
// length prefix can express: ((0x7F)<<8)|0xFF.
const maxStringLength = 0x7FFF

// ErrStringTooLong is returned when a string's UTF-16 length exceeds
// what the variable-length prefix can encode.
var ErrStringTooLong = fmt.Errorf("dictionarylib: string exceeds %d UTF-16 code units", maxStringLength)

// WriteString encodes s as a length-prefixed UTF-16-LE string per
// spec §3: a 1-byte length prefix when the UTF-16 code-unit count is
// below 128, otherwise a 2-byte prefix with the high bit of the first
// byte set.
func WriteString(buf *bytebuffer.Buffer, s string) error {
	units := utf16.Encode([]rune(s))
	n := len(units)
	if n > maxStringLength {
		return ErrStringTooLong
	}
	if n < 128 {
		if err := buf.WriteUint8(n); err != nil {
			return err
		}
	} else {
		l0 := byte(0x80 | (n >> 8))
		l1 := byte(n & 0xFF)
		buf.WriteBytes([]byte{l0, l1})
	}
	for _, u := range units {
		buf.WriteUint16(u)
	}
	return nil
}

// ReadString decodes a length-prefixed UTF-16-LE string at the buffer's
// current cursor, advancing it past the string.
func ReadString(buf *bytebuffer.Buffer) string {
	l0, _ := buf.ReadByte()
	var n int
	if l0 < 128 {
		n = int(l0)
	} else {
		l1, _ := buf.ReadByte()
		n = (int(l0&0x7F) << 8) | int(l1)
	}
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = buf.ReadUint16()
	}
	return string(utf16.Decode(units))
}
