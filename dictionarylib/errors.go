package dictionarylib

import "errors"

// Sentinel errors surfaced by the reader side of the binary dictionary
// format (header, trie adapter, group list, BinaryDictionary).
var (
	ErrFileNotFound       = errors.New("dictionary file not found")
	ErrInvalidVersion     = errors.New("unrecognized dictionary version")
	ErrDescriptionTooLong = errors.New("header description exceeds 256 bytes")
	ErrGroupNotFound      = errors.New("group id not present in group index")
)

// Sentinel errors surfaced by the CSV ingestion / builder side.
var (
	ErrTooFewColumns  = errors.New("csv row has too few columns")
	ErrBadEnumValue   = errors.New("csv row has an invalid enum value")
	ErrOutOfRange     = errors.New("csv row value is out of range")
	ErrGroupIDChanged = errors.New("csv block contains more than one group id")
)
