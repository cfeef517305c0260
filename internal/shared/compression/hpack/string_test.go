package hpack

import (
	"bytes"
	"testing"
)

func TestStringRoundTripPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := writeString(&buf, []byte("hello world"), false); err != nil {
		t.Fatal(err)
	}

	r := bytes.NewReader(buf.Bytes())
	got, err := readString(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestStringRoundTripHuffman(t *testing.T) {
	var buf bytes.Buffer
	if err := writeString(&buf, []byte("www.example.com"), true); err != nil {
		t.Fatal(err)
	}

	if buf.Bytes()[0]&0x80 == 0 {
		t.Fatal("expected H bit set")
	}

	r := bytes.NewReader(buf.Bytes())
	got, err := readString(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "www.example.com" {
		t.Fatalf("got %q", got)
	}
}

func TestStringEmptyValue(t *testing.T) {
	var buf bytes.Buffer
	if err := writeString(&buf, []byte{}, false); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Fatalf("got %v", buf.Bytes())
	}

	r := bytes.NewReader(buf.Bytes())
	got, err := readString(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %q", got)
	}
}

func TestEntrySize(t *testing.T) {
	e := Entry{Name: []byte("abc"), Value: []byte("de")}
	if e.Size() != 37 {
		t.Fatalf("got %d, want 37", e.Size())
	}
}
