package dictionarylib

// Column indexes the fields of a synonym CSV row (spec §4.8).
type Column int

const (
	ColumnGroupID Column = iota
	ColumnIsNoun
	ColumnAmbiguity
	ColumnLexemeIDs
	ColumnFormType
	ColumnAcronymType
	ColumnVariantType
	ColumnCategory
	ColumnHeadWord
)

// minColumns is the number of columns a row must carry; a row with
// fewer columns is ErrTooFewColumns. Matches the original's own
// len(cols) <= max(Column) check, i.e. columns 0..8 must be present.
const minColumns = int(ColumnHeadWord) + 1

// ambiguityDropped is the CSV ambiguity column's "row is invalid,
// drop it" sentinel value (distinct from the true/false values that
// feed the Flags.HasAmbiguity bit).
const ambiguityDropped = "2"
