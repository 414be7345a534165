package dictionarylib

import (
	"fmt"

	"github.com/WorksApplications/chikkarpy/bytebuffer"
	"github.com/WorksApplications/chikkarpy/flags"
	"github.com/WorksApplications/chikkarpy/synonym"
)

// GroupList is the group index (group ID -> byte offset) together with
// the mapped bytes it decodes group bodies from on demand.
type GroupList struct {
	data    []byte
	offsets map[int32]int32
}

// NewGroupList reads the group index starting at offset: a 4-byte count
// followed by that many (group_id, byte_offset) pairs.
func NewGroupList(data []byte, offset int) *GroupList {
	buf := bytebuffer.NewFromBytes(data)
	buf.Seek(offset)
	count := buf.ReadInt32()

	offsets := make(map[int32]int32, count)
	for i := int32(0); i < count; i++ {
		groupID := buf.ReadInt32()
		byteOffset := buf.ReadInt32()
		offsets[groupID] = byteOffset
	}

	return &GroupList{data: data, offsets: offsets}
}

// GetSynonymGroup decodes the group body for groupID. Decoding is not
// cached; the caller owns any reuse.
func (g *GroupList) GetSynonymGroup(groupID int32) (synonym.SynonymGroup, error) {
	offset, ok := g.offsets[groupID]
	if !ok {
		return synonym.SynonymGroup{}, fmt.Errorf("%w: %d", ErrGroupNotFound, groupID)
	}

	buf := bytebuffer.NewFromBytes(g.data)
	buf.Seek(int(offset))
	count := buf.ReadUint16()

	synonyms := make([]synonym.Synonym, count)
	for i := range synonyms {
		synonyms[i] = readSynonymRecord(buf)
	}

	return synonym.SynonymGroup{GroupID: groupID, Synonyms: synonyms}, nil
}

func readSynonymRecord(buf *bytebuffer.Buffer) synonym.Synonym {
	headWord := ReadString(buf)

	idCount, _ := buf.ReadByte()
	lexemeIDs := make([]int16, idCount)
	for i := range lexemeIDs {
		lexemeIDs[i] = buf.ReadInt16()
	}

	flagWord := buf.ReadUint16()
	category := ReadString(buf)

	return synonym.Synonym{
		HeadWord:  headWord,
		LexemeIDs: lexemeIDs,
		Flags:     flags.Decode(flagWord),
		Category:  category,
	}
}
