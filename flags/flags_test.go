package flags

import (
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []Flags{
		{HasAmbiguity: false, IsNoun: false, FormType: 0, AcronymType: 0, VariantType: 0},
		{HasAmbiguity: true, IsNoun: true, FormType: 4, AcronymType: 2, VariantType: 3},
		{HasAmbiguity: true, IsNoun: false, FormType: 2, AcronymType: 1, VariantType: 1},
	}
	for _, f := range cases {
		encoded, err := f.Encode()
		if err != nil {
			t.Fatalf("Encode(%+v) failed: %v", f, err)
		}
		if got := Decode(encoded); got != f {
			t.Errorf("Decode(Encode(%+v)) = %+v, want %+v", f, got, f)
		}
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	cases := []Flags{
		{FormType: 5},
		{AcronymType: 3},
		{VariantType: 4},
		{FormType: -1},
	}
	for _, f := range cases {
		if _, err := f.Encode(); !errors.Is(err, ErrBadFlags) {
			t.Errorf("Encode(%+v) error = %v, want ErrBadFlags", f, err)
		}
	}
}

func TestDecodeIgnoresHighBits(t *testing.T) {
	encoded, err := Flags{IsNoun: true, FormType: 3}.Encode()
	if err != nil {
		t.Fatal(err)
	}
	withGarbage := encoded | (1 << 15) | (1 << 10)
	got := Decode(withGarbage)
	want := Flags{IsNoun: true, FormType: 3}
	if got != want {
		t.Errorf("Decode(%016b) = %+v, want %+v", withGarbage, got, want)
	}
}
