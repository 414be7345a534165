package dictionarylib

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// BinaryDictionary is an opened, memory-mapped dictionary file: the
// header, trie (with its trailing ID table), and group list, all
// borrowing from a single read-only mapping. The mapping is released by
// Close; views taken from a BinaryDictionary must not be used after
// that.
type BinaryDictionary struct {
	file   *os.File
	mapped mmap.MMap

	header Header
	trie   *Trie
	groups *GroupList
}

// Open memory-maps path read-only and parses the header, trie, and
// group list in order.
func Open(path string) (*BinaryDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("dictionarylib: open %s: %w", path, err)
	}

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("dictionarylib: mmap %s: %w", path, err)
	}

	header := ReadHeader(mapped, 0)
	if !IsDictionary(header.Version) {
		mapped.Unmap()
		f.Close()
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, header.Version)
	}

	trie := NewTrie(mapped, HeaderSize)
	groups := NewGroupList(mapped, HeaderSize+trie.StorageSize())

	return &BinaryDictionary{
		file:   f,
		mapped: mapped,
		header: header,
		trie:   trie,
		groups: groups,
	}, nil
}

// Header returns the dictionary's header record.
func (d *BinaryDictionary) Header() Header { return d.header }

// Trie returns the dictionary's double-array trie adapter.
func (d *BinaryDictionary) Trie() *Trie { return d.trie }

// Groups returns the dictionary's synonym-group list.
func (d *BinaryDictionary) Groups() *GroupList { return d.groups }

// Close releases the memory mapping and the underlying file handle.
func (d *BinaryDictionary) Close() error {
	if err := d.mapped.Unmap(); err != nil {
		return fmt.Errorf("dictionarylib: unmap: %w", err)
	}
	return d.file.Close()
}
