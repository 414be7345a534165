// Package synonym holds the plain value types shared by the reader and
// builder: a single synonym entry and the group of entries sharing a
// group ID.
package synonym

import "github.com/WorksApplications/chikkarpy/flags"

// Synonym is one entry within a SynonymGroup: a head-word together with
// its lexeme IDs, packed flags, and a free-text category. Immutable
// after construction.
type Synonym struct {
	HeadWord   string
	LexemeIDs  []int16
	Flags      flags.Flags
	Category   string
}

// SynonymGroup is a set of synonyms sharing a group ID. Within a group,
// head-words are distinct.
type SynonymGroup struct {
	GroupID  int32
	Synonyms []Synonym
}

// Find returns the synonym in the group whose head-word equals word,
// and whether one was found.
func (g SynonymGroup) Find(word string) (Synonym, bool) {
	for _, s := range g.Synonyms {
		if s.HeadWord == word {
			return s, true
		}
	}
	return Synonym{}, false
}
