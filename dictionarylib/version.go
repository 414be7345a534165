package dictionarylib

// SystemDictVersion1 is the only recognised system-dictionary version
// magic (spec §6).
const SystemDictVersion1 uint64 = 0x7366746b6b726863 // "chrkktfs" read little-endian

// IsDictionary reports whether version identifies a recognised
// system-dictionary format.
func IsDictionary(version uint64) bool {
	return version == SystemDictVersion1
}
