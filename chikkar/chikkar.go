// Package chikkar implements the synonym lookup/merge engine (spec
// §4.9): a priority-ordered stack of dictionaries, ambiguity
// suppression, and a part-of-speech filter, collapsed into a single
// find(word, group_ids?) query.
package chikkar

import (
	"errors"
	"fmt"
)

// ErrHeadWordMissing is returned when the caller supplies a group ID
// whose group does not contain the queried word — a caller contract
// violation, not a recoverable lookup miss.
var ErrHeadWordMissing = errors.New("chikkar: group does not contain the queried head word")

// Chikkar holds an ordered stack of dictionaries (front = highest
// priority) and the verbs_enabled switch.
type Chikkar struct {
	dictionaries []*Dictionary
	verbsEnabled bool
}

// New returns an empty engine.
func New() *Chikkar {
	return &Chikkar{}
}

// AddDictionary prepends d to the stack; later additions take
// precedence over earlier ones.
func (c *Chikkar) AddDictionary(d *Dictionary) {
	c.dictionaries = append([]*Dictionary{d}, c.dictionaries...)
}

// EnableVerb turns on verb/adjective synonym expansion.
func (c *Chikkar) EnableVerb() {
	c.verbsEnabled = true
}

// Find resolves word against the dictionary stack, front to back,
// returning the head-words of its first non-empty group-ID match.
// groupIDs may be nil to mean "derive groups from word".
func (c *Chikkar) Find(word string, groupIDs []int32) ([]string, error) {
	for _, dict := range c.dictionaries {
		gids := dict.resolve(word, groupIDs)
		if len(gids) == 0 {
			continue
		}

		var out []string
		for _, gid := range gids {
			result, err := c.gather(word, int32(gid), dict)
			if err != nil {
				return nil, err
			}
			if result == nil {
				continue
			}
			out = append(out, result...)
		}
		return out, nil
	}
	return nil, nil
}

// gather implements spec §4.9's gather(word, gid, dict): materialize the
// group, confirm word belongs to it, apply the ambiguity and
// part-of-speech filters, and collect the surviving head-words.
func (c *Chikkar) gather(word string, gid int32, dict *Dictionary) ([]string, error) {
	group, ok := dict.getSynonymGroup(gid)
	if !ok {
		return nil, nil
	}

	matched, ok := group.Find(word)
	if !ok {
		return nil, fmt.Errorf("%w: word=%q group=%d", ErrHeadWordMissing, word, gid)
	}
	if matched.Flags.HasAmbiguity {
		return nil, nil
	}

	var result []string
	for _, s := range group.Synonyms {
		if s.HeadWord == word {
			continue
		}
		if !c.verbsEnabled && !s.Flags.IsNoun {
			continue
		}
		result = append(result, s.HeadWord)
	}
	return result, nil
}
