package chikkar

import (
	"github.com/WorksApplications/chikkarpy/dictionarylib"
	"github.com/WorksApplications/chikkarpy/synonym"
)

// Dictionary is one entry in a Chikkar's priority stack: an opened
// binary dictionary plus the enable_trie flag spec §4.9 attaches to
// each stack member.
type Dictionary struct {
	bin         *dictionarylib.BinaryDictionary
	enableTrie bool
}

// OpenDictionary opens path and wraps it as a stack entry.
// enableTrie controls whether lookups always re-derive groups from the
// surface word (true) or trust caller-supplied group IDs when present
// (false).
func OpenDictionary(path string, enableTrie bool) (*Dictionary, error) {
	bin, err := dictionarylib.Open(path)
	if err != nil {
		return nil, err
	}
	return &Dictionary{bin: bin, enableTrie: enableTrie}, nil
}

// Close releases the dictionary's underlying memory mapping.
func (d *Dictionary) Close() error {
	return d.bin.Close()
}

// resolve implements spec §4.9's dict.resolve: a trie-enabled
// dictionary always re-derives groups from word; a trie-disabled
// dictionary trusts groupIDs when the caller supplied any, falling
// back to the trie otherwise.
func (d *Dictionary) resolve(word string, groupIDs []int32) []uint32 {
	if d.enableTrie || groupIDs == nil {
		return d.bin.Trie().ExactMatch([]byte(word))
	}
	ids := make([]uint32, len(groupIDs))
	for i, g := range groupIDs {
		ids[i] = uint32(g)
	}
	return ids
}

// getSynonymGroup decodes the group body for groupID.
func (d *Dictionary) getSynonymGroup(groupID int32) (synonym.SynonymGroup, bool) {
	g, err := d.bin.Groups().GetSynonymGroup(groupID)
	if err != nil {
		return synonym.SynonymGroup{}, false
	}
	return g, true
}
