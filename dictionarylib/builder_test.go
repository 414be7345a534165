package dictionarylib

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func buildTestImage(t *testing.T, csv string) []byte {
	t.Helper()
	header := Header{Version: SystemDictVersion1, CreateTime: 1700000000, Description: "test"}
	headerBytes, err := header.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	var body bytes.Buffer
	if err := NewBuilder().Build(strings.NewReader(csv), &body); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	image := append([]byte{}, headerBytes...)
	image = append(image, body.Bytes()...)
	return image
}

func readTestCSV(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestBuildThenReadRoundTrip(t *testing.T) {
	image := buildTestImage(t, readTestCSV(t, "system.csv"))

	h := ReadHeader(image, 0)
	if h.Version != SystemDictVersion1 {
		t.Fatalf("header version = %d", h.Version)
	}

	trie := NewTrie(image, HeaderSize)
	groups := NewGroupList(image, HeaderSize+trie.StorageSize())

	group6, err := groups.GetSynonymGroup(6)
	if err != nil {
		t.Fatalf("GetSynonymGroup(6): %v", err)
	}
	wantHeadWords := map[string]bool{
		"開店": true, "始業": true, "営業開始": true, "店開き": true, "オープン": true, "open": true,
	}
	if len(group6.Synonyms) != len(wantHeadWords) {
		t.Fatalf("group 6 has %d synonyms, want %d", len(group6.Synonyms), len(wantHeadWords))
	}
	for _, s := range group6.Synonyms {
		if !wantHeadWords[s.HeadWord] {
			t.Errorf("unexpected head word %q in group 6", s.HeadWord)
		}
	}

	trigger, ok := group6.Find("開店")
	if !ok {
		t.Fatal("開店 missing from group 6")
	}
	if trigger.Flags.HasAmbiguity {
		t.Error("開店's ambiguity flag should be false")
	}
	openEntry, ok := group6.Find("オープン")
	if !ok {
		t.Fatal("オープン missing from group 6")
	}
	if !openEntry.Flags.HasAmbiguity {
		t.Error("オープン's ambiguity flag should be true")
	}
}

func TestBuilderSharedHeadWordAcrossGroups(t *testing.T) {
	image := buildTestImage(t, readTestCSV(t, "system.csv"))
	trie := NewTrie(image, HeaderSize)

	gids := trie.ExactMatch([]byte("open"))
	sort.Slice(gids, func(i, j int) bool { return gids[i] < gids[j] })
	want := []uint32{6, 100006}
	if len(gids) != len(want) {
		t.Fatalf("ExactMatch(open) = %v, want %v", gids, want)
	}
	for i := range want {
		if gids[i] != want[i] {
			t.Errorf("ExactMatch(open)[%d] = %d, want %d", i, gids[i], want[i])
		}
	}

	hits := trie.CommonPrefixSearch([]byte("open"), 0)
	if len(hits) != 2 {
		t.Fatalf("CommonPrefixSearch(open) = %+v, want 2 hits", hits)
	}
	for _, h := range hits {
		if h.EndOffset != 4 {
			t.Errorf("hit %+v has EndOffset %d, want 4", h, h.EndOffset)
		}
	}
}

func TestBuilderRejectsTooFewColumns(t *testing.T) {
	var out bytes.Buffer
	err := NewBuilder().Build(strings.NewReader("6,1,0\n"), &out)
	if err == nil {
		t.Fatal("expected ErrTooFewColumns")
	}
}

func TestBuilderRejectsGroupIDChanged(t *testing.T) {
	csv := "6,1,0,,0,0,0,category,開店\n7,1,0,,0,0,0,category,開業\n"
	var out bytes.Buffer
	err := NewBuilder().Build(strings.NewReader(csv), &out)
	if err == nil {
		t.Fatal("expected ErrGroupIDChanged")
	}
}

func TestBuilderDropsAmbiguityInvalidRow(t *testing.T) {
	csv := "6,1,2,,0,0,0,category,開店\n6,1,0,,0,0,0,category,始業\n"
	image := buildTestImage(t, csv)
	trie := NewTrie(image, HeaderSize)
	if gids := trie.ExactMatch([]byte("開店")); len(gids) != 0 {
		t.Errorf("dropped row's head word should not be in the trie, got %v", gids)
	}
}

// A dropped (ambiguity=2) row must never participate in the block's
// group_id bookkeeping: neither by being checked against the running
// group_id, nor by setting it for rows that follow.
func TestBuilderDroppedRowSkipsGroupIDCheck(t *testing.T) {
	csv := "6,1,2,,0,0,0,category,開店\n7,1,0,,0,0,0,category,始業\n"
	var out bytes.Buffer
	if err := NewBuilder().Build(strings.NewReader(csv), &out); err != nil {
		t.Fatalf("Build should accept a dropped row followed by a differing group_id, got: %v", err)
	}
}

func TestBuilderDroppedRowDoesNotMaskLaterMismatch(t *testing.T) {
	csv := "6,1,0,,0,0,0,category,開店\n7,1,2,,0,0,0,category,始業\n8,1,0,,0,0,0,category,営業\n"
	var out bytes.Buffer
	err := NewBuilder().Build(strings.NewReader(csv), &out)
	if err == nil {
		t.Fatal("expected ErrGroupIDChanged: a dropped middle row must not reset the block's running group_id")
	}
}
