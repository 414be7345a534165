package dictionarylib

import "github.com/WorksApplications/chikkarpy/bytebuffer"

// IDTable is the variable-length section mapping a trie value (a byte
// offset into this table's body) to the list of group IDs stored there.
type IDTable struct {
	body []byte
	size int32
}

// NewIDTable reads an IDTable from data starting at offset: a 4-byte
// size prefix followed by size bytes of body.
func NewIDTable(data []byte, offset int) *IDTable {
	buf := bytebuffer.NewFromBytes(data)
	buf.Seek(offset)
	size := buf.ReadInt32()
	body := buf.ReadBytes(int(size))
	return &IDTable{body: body, size: size}
}

// Get returns the group IDs stored at the given byte offset within the
// table body: a u8 count n, followed by n little-endian u32 IDs.
func (t *IDTable) Get(index uint32) []uint32 {
	n := int(t.body[index])
	ids := make([]uint32, n)
	pos := int(index) + 1
	for i := 0; i < n; i++ {
		ids[i] = bytebuffer.LittleEndian.Uint32(t.body[pos:])
		pos += 4
	}
	return ids
}

// StorageSize returns the total on-disk byte size of this section,
// including its 4-byte size prefix.
func (t *IDTable) StorageSize() int {
	return 4 + int(t.size)
}
