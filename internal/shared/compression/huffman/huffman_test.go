package huffman

import (
	"bytes"
	"testing"
)

var widths = []int{1, 2, 3, 4, 5}

// validLiterals pairs plaintext with its known-good canonical Huffman
// encoding, reproduced from the reference HPACK implementation's own test
// fixtures so the wire bytes are not merely round-tripped against this
// package's own encoder.
func validLiterals() []struct {
	plain []byte
	coded []byte
} {
	return []struct {
		plain []byte
		coded []byte
	}{
		{[]byte(":method"), []byte{185, 73, 83, 57, 228}},
		{[]byte(":scheme"), []byte{184, 130, 78, 90, 75}},
		{[]byte(":authority"), []byte{184, 59, 83, 57, 236, 50, 125, 127}},
		{[]byte("nibbstack.com"), []byte{168, 209, 198, 132, 140, 157, 87, 33, 233}},
		{[]byte("GET"), []byte{197, 131, 127}},
		{[]byte("http"), []byte{157, 41, 175}},
		{[]byte(":path"), []byte{185, 88, 211, 63}},
		{[]byte("hpack-test"), []byte{158, 177, 147, 170, 201, 42, 19}},
		{[]byte("xxxxxxx1"), []byte{243, 231, 207, 159, 62, 124, 135}},
		{[]byte("accept"), []byte{25, 8, 90, 211}},
		{[]byte("Accept"), []byte{132, 132, 45, 105}},
		{[]byte("cookie"), []byte{33, 207, 212, 197}},
		{[]byte("TE"), []byte{223, 131}},
		{
			[]byte("Mozilla/5.0 (Macintosh; Intel Mac OS X 10.8; rv:16.0) Gecko/20100101 Firefox/16.0"),
			[]byte{208, 127, 102, 162, 129, 176, 218, 224, 83, 250, 208, 50, 26, 164, 157, 19, 253, 169, 146, 164, 150, 133, 52, 12, 138, 106, 220, 167, 226, 129, 2, 239, 125, 169, 103, 123, 129, 113, 112, 127, 106, 98, 41, 58, 157, 129, 0, 32, 0, 64, 21, 48, 154, 194, 202, 127, 44, 5, 197, 193},
		},
		{[]byte("\x00\x00\x00"), []byte{255, 199, 254, 63, 241}},
		{[]byte("\xFF\xF8"), []byte{255, 255, 251, 191, 255, 255, 95}},
	}
}

func invalidEncodings() [][]byte {
	return [][]byte{
		{0b11111111, 0b11111111},                                     // EOS, padding > 7 bits
		{0b00011111, 0b11111111, 0b11111111, 0b11111111, 0b11100000}, // a, EOS, +5
		{0b11111111, 0b00111111, 0b11111111, 0b11111111, 0b11111111}, // ?, EOS
		{0b11111111, 0b11111111, 0b11111111, 0b11111100},             // EOS, +2
	}
}

func TestDecodeKnownLiterals(t *testing.T) {
	for _, width := range widths {
		for _, tc := range validLiterals() {
			got, err := Decode(tc.coded, width)
			if err != nil {
				t.Fatalf("width=%d decode %q: %v", width, tc.plain, err)
			}
			if !bytes.Equal(got, tc.plain) {
				t.Fatalf("width=%d decode %q: got %q", width, tc.plain, got)
			}
		}
	}
}

func TestDecodeRejectsInvalidInput(t *testing.T) {
	for _, width := range widths {
		for _, enc := range invalidEncodings() {
			if _, err := Decode(enc, width); err != ErrInvalidInput {
				t.Fatalf("width=%d decode %v: expected ErrInvalidInput, got %v", width, enc, err)
			}
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, width := range widths {
		for _, tc := range validLiterals() {
			var buf bytes.Buffer
			Encode(&buf, tc.plain)
			if !bytes.Equal(buf.Bytes(), tc.coded) {
				t.Fatalf("encode %q: got %v, want %v", tc.plain, buf.Bytes(), tc.coded)
			}

			got, err := Decode(buf.Bytes(), width)
			if err != nil {
				t.Fatalf("width=%d round trip %q: %v", width, tc.plain, err)
			}
			if !bytes.Equal(got, tc.plain) {
				t.Fatalf("width=%d round trip %q: got %q", width, tc.plain, got)
			}
		}
	}
}

func TestEncodeDecodeAllBytes(t *testing.T) {
	var all []byte
	for b := 0; b < 256; b++ {
		all = append(all, byte(b))
	}

	var buf bytes.Buffer
	Encode(&buf, all)

	for _, width := range widths {
		got, err := Decode(buf.Bytes(), width)
		if err != nil {
			t.Fatalf("width=%d: %v", width, err)
		}
		if !bytes.Equal(got, all) {
			t.Fatalf("width=%d: round trip of all byte values mismatched", width)
		}
	}
}

func TestNewDecoderRejectsBadWidth(t *testing.T) {
	for _, width := range []int{0, -1, 6, 30} {
		if _, err := NewDecoder(width); err == nil {
			t.Fatalf("width=%d: expected error", width)
		}
	}
}

func TestShortOnesPaddingIsLegal(t *testing.T) {
	// "a" has a 5-bit code; 3 padding ones bring it to a whole octet.
	legal := []byte{byte(Code(int('a'))<<3) | 0b111}
	if _, err := Decode(legal, 4); err != nil {
		t.Fatalf("legal 3-bit padding rejected: %v", err)
	}
}
