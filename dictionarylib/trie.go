package dictionarylib

import (
	"github.com/WorksApplications/chikkarpy/bytebuffer"
	"github.com/WorksApplications/chikkarpy/internal/doublearray"
)

// PrefixHit is one result of Trie.CommonPrefixSearch: a group ID
// reachable at a given prefix, paired with the absolute offset (into
// the original key) where that prefix ends.
type PrefixHit struct {
	GroupID  uint32
	EndOffset int
}

// Trie wraps a double-array trie together with the ID table immediately
// following it, presenting the combined exact-match / common-prefix
// contract spec §4.5 describes.
type Trie struct {
	array   *doublearray.Array
	ids     *IDTable
	cellCount int32
}

// NewTrie reads a Trie section from data starting at offset: a 4-byte
// cell count, the cell array itself, then an IDTable immediately after.
func NewTrie(data []byte, offset int) *Trie {
	buf := bytebuffer.NewFromBytes(data)
	buf.Seek(offset)
	size := buf.ReadInt32()
	cellBytes := buf.ReadBytes(int(size) * 4)

	cells := make([]int32, size)
	for i := range cells {
		cells[i] = int32(bytebuffer.LittleEndian.Uint32(cellBytes[i*4:]))
	}

	return &Trie{
		array:     doublearray.FromCells(cells),
		ids:       NewIDTable(data, offset+4+int(size)*4),
		cellCount: size,
	}
}

// ExactMatch looks up key and returns the full group-ID list stored at
// the matched ID-table offset, or nil if key is absent.
func (t *Trie) ExactMatch(key []byte) []uint32 {
	value, found := t.array.ExactMatch(key)
	if !found {
		return nil
	}
	return t.ids.Get(uint32(value))
}

// CommonPrefixSearch yields every group ID associated with a prefix of
// key[start:], paired with the absolute end offset of that prefix.
func (t *Trie) CommonPrefixSearch(key []byte, start int) []PrefixHit {
	matches := t.array.CommonPrefixSearch(key[start:])
	var hits []PrefixHit
	for _, m := range matches {
		for _, gid := range t.ids.Get(uint32(m.Value)) {
			hits = append(hits, PrefixHit{GroupID: gid, EndOffset: start + m.Length})
		}
	}
	return hits
}

// StorageSize returns the total on-disk byte size of the trie section
// plus its trailing ID table.
func (t *Trie) StorageSize() int {
	return int(t.cellCount)*4 + 4 + t.ids.StorageSize()
}
