// Package flags implements the five-subfield bit-packed word attached to
// every synonym record.
package flags

import (
	"errors"
	"fmt"
)

// ErrBadFlags is returned when a sub-field does not fit its bit width.
var ErrBadFlags = errors.New("flags: sub-field out of range")

const (
	hasAmbiguityBit = 0
	isNounBit       = 1
	formTypeShift   = 2
	formTypeMask    = 0x7
	acronymShift    = 5
	acronymMask     = 0x3
	variantShift    = 7
	variantMask     = 0x3

	maxFormType = 4
	maxAcronym  = 2
	maxVariant  = 3
)

// Flags holds the decoded synonym attributes described in spec §3.
type Flags struct {
	HasAmbiguity bool
	IsNoun       bool
	FormType     int
	AcronymType  int
	VariantType  int
}

// New validates the sub-fields and constructs a Flags value.
func New(hasAmbiguity, isNoun bool, formType, acronymType, variantType int) (Flags, error) {
	f := Flags{
		HasAmbiguity: hasAmbiguity,
		IsNoun:       isNoun,
		FormType:     formType,
		AcronymType:  acronymType,
		VariantType:  variantType,
	}
	if _, err := f.Encode(); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// Encode packs the flags into a 16-bit word per spec §3's bit layout.
func (f Flags) Encode() (uint16, error) {
	if f.FormType < 0 || f.FormType > maxFormType {
		return 0, fmt.Errorf("%w: form_type=%d", ErrBadFlags, f.FormType)
	}
	if f.AcronymType < 0 || f.AcronymType > maxAcronym {
		return 0, fmt.Errorf("%w: acronym_type=%d", ErrBadFlags, f.AcronymType)
	}
	if f.VariantType < 0 || f.VariantType > maxVariant {
		return 0, fmt.Errorf("%w: variant_type=%d", ErrBadFlags, f.VariantType)
	}

	var v uint16
	if f.HasAmbiguity {
		v |= 1 << hasAmbiguityBit
	}
	if f.IsNoun {
		v |= 1 << isNounBit
	}
	v |= uint16(f.FormType) << formTypeShift
	v |= uint16(f.AcronymType) << acronymShift
	v |= uint16(f.VariantType) << variantShift
	return v, nil
}

// Decode unpacks a 16-bit word into Flags. High/unused bits are ignored.
func Decode(v uint16) Flags {
	return Flags{
		HasAmbiguity: v&(1<<hasAmbiguityBit) != 0,
		IsNoun:       v&(1<<isNounBit) != 0,
		FormType:     int((v >> formTypeShift) & formTypeMask),
		AcronymType:  int((v >> acronymShift) & acronymMask),
		VariantType:  int((v >> variantShift) & variantMask),
	}
}
