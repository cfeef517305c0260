package hpack

import (
	"bytes"
	"testing"
)

// S1: Indexed, static.
func TestEncodeIndexedStatic(t *testing.T) {
	enc := NewEncoder(DefaultDynamicTableSize)

	var buf bytes.Buffer
	if err := enc.Encode(&buf, Indexed(2)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x82}) {
		t.Fatalf("got %v", buf.Bytes())
	}
}

func TestEncodeIndexedRejectsBadIndex(t *testing.T) {
	enc := NewEncoder(DefaultDynamicTableSize)

	var buf bytes.Buffer
	if err := enc.Encode(&buf, Indexed(9999)); err != ErrInvalidIndex {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

// S2: literal with indexing and Huffman value.
func TestEncodeIndexedNameWithIndexingAndHuffman(t *testing.T) {
	enc := NewEncoder(DefaultDynamicTableSize)

	var buf bytes.Buffer
	err := enc.Encode(&buf, IndexedName(2, []byte("PATCH"), HuffmanValue|WithIndexing))
	if err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if out[0]&0xc0 != 0x40 || out[0]&0x3f != 2 {
		t.Fatalf("unexpected first byte %08b", out[0])
	}
	if out[1]&0x80 == 0 {
		t.Fatalf("expected Huffman bit set on value length byte, got %08b", out[1])
	}

	entries := enc.DynamicEntries()
	if len(entries) != 1 || string(entries[0].Name) != ":method" || string(entries[0].Value) != "PATCH" {
		t.Fatalf("expected dynamic index 62 = (:method, PATCH), got %+v", entries)
	}
}

// S3: literal with both names Huffman-coded.
func TestEncodeLiteralBothHuffman(t *testing.T) {
	enc := NewEncoder(DefaultDynamicTableSize)

	var buf bytes.Buffer
	err := enc.Encode(&buf, Literal([]byte("foo"), []byte("bar"), HuffmanName|HuffmanValue|WithIndexing))
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x40, 0x82, 0x94, 0xE7, 0x83, 0x8C, 0x76, 0x7F}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %v, want %v", buf.Bytes(), want)
	}
}

// S4: best format lookup picks the static exact match.
func TestEncodeBestFormatStaticExactWins(t *testing.T) {
	enc := NewEncoder(DefaultDynamicTableSize)

	var setup bytes.Buffer
	if err := enc.Encode(&setup, Literal([]byte(":method"), []byte("DELETE"), WithIndexing|BestFormat)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, Literal([]byte(":method"), []byte("GET"), BestFormat)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x82}) {
		t.Fatalf("got %v", buf.Bytes())
	}
}

// S5: dynamic table size update with eviction.
func TestEncodeUpdateMaxDynamicSizeWithEviction(t *testing.T) {
	enc := NewEncoder(70)

	var setup bytes.Buffer
	if err := enc.Encode(&setup, Literal([]byte("a"), []byte("a"), WithIndexing)); err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(&setup, Literal([]byte("b"), []byte("b"), WithIndexing)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := enc.UpdateMaxDynamicSize(&buf, 50); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x3F, 0x13}) {
		t.Fatalf("got %v", buf.Bytes())
	}

	if enc.table.dynamicLen() != 1 {
		t.Fatalf("expected 1 entry remaining, got %d", enc.table.dynamicLen())
	}
}

func TestEncodeDecodeFullRoundTrip(t *testing.T) {
	enc := NewEncoder(DefaultDynamicTableSize)
	dec := NewDecoder(DefaultDynamicTableSize, 4)

	var buf bytes.Buffer
	inputs := []encoderInput{
		Indexed(2),
		Literal([]byte(":path"), []byte("/resource"), HuffmanValue|WithIndexing),
		Literal([]byte("x-custom"), []byte("value"), HuffmanName|HuffmanValue),
		IndexedName(4, []byte("/other"), 0),
	}
	for _, in := range inputs {
		if err := enc.Encode(&buf, in); err != nil {
			t.Fatalf("encode %+v: %v", in, err)
		}
	}

	fields, err := dec.DecodeBlock(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []Entry{
		{Name: []byte(":method"), Value: []byte("GET")},
		{Name: []byte(":path"), Value: []byte("/resource")},
		{Name: []byte("x-custom"), Value: []byte("value")},
		{Name: []byte(":path"), Value: []byte("/other")},
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i := range want {
		if string(fields[i].Name) != string(want[i].Name) || string(fields[i].Value) != string(want[i].Value) {
			t.Fatalf("field %d: got %+v, want %+v", i, fields[i], want[i])
		}
	}
}
