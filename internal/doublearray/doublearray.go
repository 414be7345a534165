// Package doublearray implements a double-array trie: a compact static
// map from byte-string keys to non-negative int32 values, with O(|key|)
// exact-match and common-prefix search.
//
// spec.md §1 and §9 treat the double-array trie as a pluggable black box
// sourced from any library matching a build/set_array/exact_match/
// common_prefix_search/total_size contract (the shape of darts-clone and
// its Go ports). No example in the retrieval pack ships source for such
// a library to ground a binding on, so this package implements the
// classical Aoe (1989) double-array construction directly, behind the
// same contract, so a real third-party implementation is a one-file swap
// in dictionarylib's adapter (trie.go) if one becomes available.
//
// Storage: a trie of N allocated array slots is serialized as 2*N
// int32 words, interleaving base[i] at even offsets and check[i] at odd
// offsets, so the whole structure round-trips through a single flat
// []int32 array as the binary dictionary format requires.
package doublearray

import "sort"

const emptyCheck = -1

// Array is a built double-array trie, ready for lookups.
type Array struct {
	base  []int32
	check []int32
}

// entry is one key/value pair staged for Build.
type entry struct {
	key   []byte
	value int32
}

// Build constructs a double-array trie over keys and their parallel
// values. keys need not be pre-sorted; Build sorts them internally. A
// key may repeat (e.g. a shared headword with multiple IDs is modeled
// by the caller picking one combined value, as the id table does) but
// Build itself require unique keys — duplicate keys are a caller error
// in this adapter's use (the builder merges by key before calling in).
func Build(keys [][]byte, values []int32) *Array {
	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{key: k, value: values[i]}
	}
	sort.Slice(entries, func(i, j int) bool {
		return string(entries[i].key) < string(entries[j].key)
	})

	a := &Array{
		base:  []int32{0},
		check: []int32{emptyCheck},
	}
	a.setCheck(0, 0) // root owns itself
	if len(entries) == 0 {
		return a
	}
	a.insertGroup(0, entries)
	return a
}

func (a *Array) ensure(idx int) {
	for idx >= len(a.base) {
		a.base = append(a.base, 0)
		a.check = append(a.check, emptyCheck)
	}
}

func (a *Array) setCheck(idx int, owner int32) {
	a.ensure(idx)
	a.check[idx] = owner
}

func (a *Array) setBase(idx int, v int32) {
	a.ensure(idx)
	a.base[idx] = v
}

func (a *Array) isFree(idx int) bool {
	if idx < 0 {
		return false
	}
	if idx >= len(a.check) {
		return true
	}
	return a.check[idx] == emptyCheck
}

// insertGroup assigns array slots for every distinct next byte among
// entries sharing the prefix that already terminates at nodeIdx, then
// recurses into each child group.
func (a *Array) insertGroup(nodeIdx int, entries []entry) {
	// Partition entries into buckets keyed by their next label: either
	// the reserved terminal label (key fully consumed here) or the next
	// byte of the key.
	type bucket struct {
		label int
		items []entry
	}
	var buckets []bucket
	i := 0
	for i < len(entries) {
		var label int
		if len(entries[i].key) == 0 {
			label = terminalLabel()
		} else {
			label = int(entries[i].key[0])
		}
		j := i + 1
		for j < len(entries) {
			var l int
			if len(entries[j].key) == 0 {
				l = terminalLabel()
			} else {
				l = int(entries[j].key[0])
			}
			if l != label {
				break
			}
			j++
		}
		buckets = append(buckets, bucket{label: label, items: entries[i:j]})
		i = j
	}

	labels := make([]int, len(buckets))
	for i, bk := range buckets {
		labels[i] = bk.label
	}

	base := a.findBase(labels)
	a.setBase(nodeIdx, int32(base))

	// Claim every child slot before recursing, so no subtree built below
	// can take a slot that belongs to a later sibling.
	for _, bk := range buckets {
		a.setCheck(childSlot(int32(base), bk.label), int32(nodeIdx))
	}

	for _, bk := range buckets {
		slot := childSlot(int32(base), bk.label)

		if bk.label == terminalLabel() {
			// Exactly one entry can terminate at a given node.
			a.setBase(slot, -(bk.items[0].value + 1))
			continue
		}

		// Strip the consumed leading byte before recursing.
		next := make([]entry, len(bk.items))
		for k, e := range bk.items {
			next[k] = entry{key: e.key[1:], value: e.value}
		}
		a.insertGroup(slot, next)
	}
}

// terminalLabel is the reserved pseudo-label marking "end of key" at a
// node. Real byte labels (0..255) are shifted up by one in childSlot, so
// this value never collides with an actual key byte.
func terminalLabel() int {
	return 0
}

// childSlot returns the array slot for the transition (nodeIdx, label),
// where label is either terminalLabel() or a real byte value. Real byte
// labels are shifted up by one so the reserved terminal marker can sit
// at offset 0 relative to base without colliding with byte value 0.
func childSlot(base int32, label int) int {
	if label == terminalLabel() {
		return int(base)
	}
	return int(base) + label + 1
}

// findBase returns the smallest base >= 1 such that childSlot(base, l)
// is unused for every label l in labels. Starting at 1 keeps slot 0
// reserved for the root node's own check entry.
func (a *Array) findBase(labels []int) int {
	for base := 1; ; base++ {
		ok := true
		for _, l := range labels {
			if !a.isFree(childSlot(int32(base), l)) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

// ExactMatch looks up key and reports its value, if any.
func (a *Array) ExactMatch(key []byte) (value int32, found bool) {
	idx := 0
	for _, b := range key {
		slot := childSlot(a.base[idx], int(b))
		if slot < 0 || slot >= len(a.check) || a.check[slot] != int32(idx) {
			return 0, false
		}
		idx = slot
	}
	slot := childSlot(a.base[idx], terminalLabel())
	if slot < 0 || slot >= len(a.check) || a.check[slot] != int32(idx) {
		return 0, false
	}
	return -(a.base[slot] + 1), true
}

// PrefixMatch is one hit from CommonPrefixSearch: the byte-length of the
// matched prefix and its stored value.
type PrefixMatch struct {
	Length int
	Value  int32
}

// CommonPrefixSearch yields every prefix of key that is a key in the
// trie, in order of increasing length.
func (a *Array) CommonPrefixSearch(key []byte) []PrefixMatch {
	var results []PrefixMatch
	idx := 0
	for i, b := range key {
		if slot := childSlot(a.base[idx], terminalLabel()); slot >= 0 && slot < len(a.check) && a.check[slot] == int32(idx) {
			results = append(results, PrefixMatch{Length: i, Value: -(a.base[slot] + 1)})
		}
		slot := childSlot(a.base[idx], int(b))
		if slot < 0 || slot >= len(a.check) || a.check[slot] != int32(idx) {
			return results
		}
		idx = slot
	}
	if slot := childSlot(a.base[idx], terminalLabel()); slot >= 0 && slot < len(a.check) && a.check[slot] == int32(idx) {
		results = append(results, PrefixMatch{Length: len(key), Value: -(a.base[slot] + 1)})
	}
	return results
}

// Size returns the number of allocated array slots (base/check pairs).
func (a *Array) Size() int {
	return len(a.base)
}

// Cells serializes the array into the interleaved int32 word format
// written to the binary dictionary's trie section: cells[2*i] = base[i],
// cells[2*i+1] = check[i].
func (a *Array) Cells() []int32 {
	cells := make([]int32, 2*len(a.base))
	for i := range a.base {
		cells[2*i] = a.base[i]
		cells[2*i+1] = a.check[i]
	}
	return cells
}

// FromCells reconstructs an Array from the interleaved cell format
// produced by Cells.
func FromCells(cells []int32) *Array {
	n := len(cells) / 2
	a := &Array{base: make([]int32, n), check: make([]int32, n)}
	for i := 0; i < n; i++ {
		a.base[i] = cells[2*i]
		a.check[i] = cells[2*i+1]
	}
	return a
}
