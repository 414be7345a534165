package doublearray

import (
	"reflect"
	"testing"
)

func TestExactMatch(t *testing.T) {
	keys := [][]byte{[]byte("open"), []byte("opener"), []byte("opens"), []byte("close")}
	values := []int32{10, 20, 30, 40}
	a := Build(keys, values)

	for i, k := range keys {
		v, ok := a.ExactMatch(k)
		if !ok {
			t.Fatalf("ExactMatch(%q) not found", k)
		}
		if v != values[i] {
			t.Errorf("ExactMatch(%q) = %d, want %d", k, v, values[i])
		}
	}

	if _, ok := a.ExactMatch([]byte("nothing")); ok {
		t.Error("ExactMatch(nothing) should miss")
	}
	if _, ok := a.ExactMatch([]byte("ope")); ok {
		t.Error("ExactMatch(ope) should miss: not a stored key")
	}
}

func TestCommonPrefixSearch(t *testing.T) {
	keys := [][]byte{[]byte("a"), []byte("ab"), []byte("abc")}
	values := []int32{1, 2, 3}
	a := Build(keys, values)

	got := a.CommonPrefixSearch([]byte("abcd"))
	want := []PrefixMatch{{Length: 1, Value: 1}, {Length: 2, Value: 2}, {Length: 3, Value: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommonPrefixSearch = %+v, want %+v", got, want)
	}
}

func TestCellsRoundTrip(t *testing.T) {
	keys := [][]byte{[]byte("open"), []byte("close"), []byte("op")}
	values := []int32{1, 2, 3}
	a := Build(keys, values)

	rebuilt := FromCells(a.Cells())
	for i, k := range keys {
		v, ok := rebuilt.ExactMatch(k)
		if !ok || v != values[i] {
			t.Errorf("rebuilt.ExactMatch(%q) = (%d, %v), want (%d, true)", k, v, ok, values[i])
		}
	}
}

func TestEmptyBuild(t *testing.T) {
	a := Build(nil, nil)
	if _, ok := a.ExactMatch([]byte("x")); ok {
		t.Error("ExactMatch on empty trie should miss")
	}
}
