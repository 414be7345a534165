package dictionarylib

import (
	"strings"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Version: SystemDictVersion1, CreateTime: 1700000000, Description: "a test dictionary"}
	b, err := h.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != HeaderSize {
		t.Fatalf("Bytes() length = %d, want %d", len(b), HeaderSize)
	}

	got := ReadHeader(b, 0)
	if got != h {
		t.Errorf("ReadHeader = %+v, want %+v", got, h)
	}
}

func TestHeaderEmptyDescription(t *testing.T) {
	h := Header{Version: SystemDictVersion1, CreateTime: 1}
	b, err := h.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	got := ReadHeader(b, 0)
	if got.Description != "" {
		t.Errorf("Description = %q, want empty", got.Description)
	}
}

func TestHeaderDescriptionTooLong(t *testing.T) {
	h := Header{Version: SystemDictVersion1, Description: strings.Repeat("x", 257)}
	if _, err := h.Bytes(); err == nil {
		t.Error("Bytes() should fail for an oversized description")
	}
}

func TestHeaderFullDescriptionNoNUL(t *testing.T) {
	desc := strings.Repeat("x", headerDescriptionSize)
	h := Header{Version: SystemDictVersion1, Description: desc}
	b, err := h.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	got := ReadHeader(b, 0)
	if got.Description != desc {
		t.Errorf("Description = %q, want %q", got.Description, desc)
	}
}

func TestIsDictionary(t *testing.T) {
	if !IsDictionary(SystemDictVersion1) {
		t.Error("IsDictionary(SystemDictVersion1) = false")
	}
	if IsDictionary(0) {
		t.Error("IsDictionary(0) = true")
	}
}
