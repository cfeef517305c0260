package main

import (
	"testing"

	"hpackit/internal/shared/compression/hpack"
)

func TestParseFlagsCombines(t *testing.T) {
	flags, err := parseFlags([]string{"huffman-name", "with-indexing"})
	if err != nil {
		t.Fatal(err)
	}
	want := hpack.HuffmanName | hpack.WithIndexing
	if flags != want {
		t.Fatalf("got %08b, want %08b", flags, want)
	}
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	if _, err := parseFlags([]string{"bogus"}); err == nil {
		t.Fatal("expected error for unknown flag name")
	}
}

func TestParseFlagsEmpty(t *testing.T) {
	flags, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if flags != 0 {
		t.Fatalf("expected zero flags, got %08b", flags)
	}
}
