package dictionarylib

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/WorksApplications/chikkarpy/bytebuffer"
	"github.com/WorksApplications/chikkarpy/flags"
	"github.com/WorksApplications/chikkarpy/internal/doublearray"
)

// Builder parses a synonym CSV source and serializes the trie, ID
// table, and group sections described in spec §3/§4.8. The header is
// written separately by the caller before the builder's output.
type Builder struct {
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger overrides the builder's logger; the default is
// slog.Default(), mirroring chikkarpy's DictionaryBuilder.__default_logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder constructs a Builder with opts applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// stagedRow is one surviving CSV row, fully parsed.
type stagedRow struct {
	groupID   int32
	headWord  string
	lexemeIDs []int16
	flags     flags.Flags
	category  string
}

// Build reads CSV rows from r and writes the trie, ID table, and group
// sections, in that order, to w.
func (b *Builder) Build(r io.Reader, w io.Writer) error {
	rows, err := b.parseRows(r)
	if err != nil {
		return err
	}

	keyIDs := treemap.NewWithStringComparator()
	for _, row := range rows {
		var ids []uint32
		if v, ok := keyIDs.Get(row.headWord); ok {
			ids = v.([]uint32)
		}
		ids = append(ids, uint32(row.groupID))
		keyIDs.Put(row.headWord, ids)
	}

	b.logger.Info("building trie", "keys", keyIDs.Size())

	idTable := bytebuffer.New()
	keys := make([][]byte, 0, keyIDs.Size())
	values := make([]int32, 0, keyIDs.Size())

	it := keyIDs.Iterator()
	for it.Next() {
		key := it.Key().(string)
		ids := it.Value().([]uint32)

		offset := int32(idTable.Tell())
		if err := idTable.WriteUint8(len(ids)); err != nil {
			return fmt.Errorf("dictionarylib: id table entry for %q: %w", key, err)
		}
		for _, id := range ids {
			idTable.WriteUint32(id)
		}

		keys = append(keys, []byte(key))
		values = append(values, offset)
	}

	trie := doublearray.Build(keys, values)
	cells := trie.Cells()

	out := bytebuffer.New()
	out.WriteInt32(int32(len(cells)))
	for _, c := range cells {
		out.WriteInt32(c)
	}
	b.logger.Info("trie written", "bytes", out.Tell())

	out.WriteInt32(int32(idTable.Tell()))
	out.WriteBytes(idTable.Bytes())
	b.logger.Info("id table written", "bytes", idTable.Tell())

	if err := b.writeGroups(out, rows); err != nil {
		return err
	}
	b.logger.Info("groups written")

	_, err = w.Write(out.Bytes())
	return err
}

// writeGroups reserves the group index, writes each group body in
// first-seen order, and patches the index in place once every offset is
// known. Offsets are absolute file positions: they count the fixed-size
// header the caller writes before the builder's output.
func (b *Builder) writeGroups(out *bytebuffer.Buffer, rows []stagedRow) error {
	var order []int32
	grouped := make(map[int32][]stagedRow)
	for _, row := range rows {
		if _, ok := grouped[row.groupID]; !ok {
			order = append(order, row.groupID)
		}
		grouped[row.groupID] = append(grouped[row.groupID], row)
	}

	indexStart := out.Tell()
	out.WriteInt32(int32(len(order)))
	for range order {
		out.WriteInt32(0)
		out.WriteInt32(0)
	}

	offsets := make([]int32, len(order))
	for i, gid := range order {
		offsets[i] = int32(HeaderSize + out.Tell())
		entries := grouped[gid]
		out.WriteUint16(uint16(len(entries)))
		for _, e := range entries {
			if err := writeSynonymRecord(out, e); err != nil {
				return fmt.Errorf("dictionarylib: group %d: %w", gid, err)
			}
		}
	}

	end := out.Tell()
	out.Seek(indexStart)
	out.WriteInt32(int32(len(order)))
	for i, gid := range order {
		out.WriteInt32(gid)
		out.WriteInt32(offsets[i])
	}
	out.Seek(end)
	return nil
}

func writeSynonymRecord(buf *bytebuffer.Buffer, row stagedRow) error {
	if err := WriteString(buf, row.headWord); err != nil {
		return fmt.Errorf("head_word: %w", err)
	}
	if err := buf.WriteUint8(len(row.lexemeIDs)); err != nil {
		return fmt.Errorf("lexeme_ids: %w", err)
	}
	for _, id := range row.lexemeIDs {
		buf.WriteInt16(id)
	}
	flagWord, err := row.flags.Encode()
	if err != nil {
		return err
	}
	buf.WriteUint16(flagWord)
	if err := WriteString(buf, row.category); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	return nil
}

// parseRows scans r line by line, splitting blocks on blank lines and
// validating each surviving row per spec §4.8.
func (b *Builder) parseRows(r io.Reader) ([]stagedRow, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []stagedRow
	currentGroupID := int32(-1)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			currentGroupID = -1
			continue
		}

		cols := strings.Split(line, ",")
		if len(cols) < minColumns {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrTooFewColumns)
		}

		// A dropped row never reads or sets the block's group_id: it is
		// discarded before group_id is even parsed, matching parse_line
		// returning None ahead of build_synonym's group_id bookkeeping.
		if cols[ColumnAmbiguity] == ambiguityDropped {
			continue
		}

		groupID, err := parseInt32(cols[ColumnGroupID])
		if err != nil {
			return nil, fmt.Errorf("line %d: group_id: %w", lineNo, err)
		}
		if currentGroupID == -1 {
			currentGroupID = groupID
		} else if currentGroupID != groupID {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrGroupIDChanged)
		}

		hasAmbiguity, err := parseBoolEnum(cols[ColumnAmbiguity])
		if err != nil {
			return nil, fmt.Errorf("line %d: ambiguity: %w", lineNo, err)
		}

		isNoun, err := parseIsNoun(cols[ColumnIsNoun])
		if err != nil {
			return nil, fmt.Errorf("line %d: is_noun: %w", lineNo, err)
		}

		formType, err := parseEnumRange(cols[ColumnFormType], 0, 4)
		if err != nil {
			return nil, fmt.Errorf("line %d: form_type: %w", lineNo, err)
		}
		acronymType, err := parseEnumRange(cols[ColumnAcronymType], 0, 2)
		if err != nil {
			return nil, fmt.Errorf("line %d: acronym_type: %w", lineNo, err)
		}
		variantType, err := parseEnumRange(cols[ColumnVariantType], 0, 3)
		if err != nil {
			return nil, fmt.Errorf("line %d: variant_type: %w", lineNo, err)
		}

		f, err := flags.New(hasAmbiguity, isNoun, formType, acronymType, variantType)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		lexemeIDs, err := parseLexemeIDs(cols[ColumnLexemeIDs], groupID)
		if err != nil {
			return nil, fmt.Errorf("line %d: lexeme_ids: %w", lineNo, err)
		}

		rows = append(rows, stagedRow{
			groupID:   groupID,
			headWord:  cols[ColumnHeadWord],
			lexemeIDs: lexemeIDs,
			flags:     f,
			category:  cols[ColumnCategory],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionarylib: reading csv: %w", err)
	}
	return rows, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return int32(v), nil
}

func parseBoolEnum(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrBadEnumValue, s)
	}
}

func parseIsNoun(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return true, nil
	case "2":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrBadEnumValue, s)
	}
}

func parseEnumRange(s string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadEnumValue, s)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return v, nil
}

// parseLexemeIDs parses the "/"-separated lexeme ID column. An empty
// column falls back to a single-element list containing groupID
// converted to int16, the width of a lexeme ID (spec's resolution of the
// source's empty-lexeme_ids fallback, not the original's latent
// string-valued bug). A groupID outside the int16 range is truncated by
// that conversion.
func parseLexemeIDs(s string, groupID int32) ([]int16, error) {
	if s == "" {
		return []int16{int16(groupID)}, nil
	}
	parts := strings.Split(s, "/")
	ids := make([]int16, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrOutOfRange, p)
		}
		ids[i] = int16(v)
	}
	return ids, nil
}
