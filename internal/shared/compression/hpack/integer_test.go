package hpack

import (
	"bytes"
	"testing"
)

func TestIntegerRoundTrip(t *testing.T) {
	cases := []struct {
		n     int
		value uint32
	}{
		{4, 0}, {4, 14}, {4, 15}, {4, 16}, {4, 1337},
		{5, 31}, {5, 4096}, {6, 63}, {6, 64}, {7, 127}, {7, 128},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		if err := EncodeInteger(&buf, tc.value, tc.n, 0); err != nil {
			t.Fatalf("n=%d value=%d: encode: %v", tc.n, tc.value, err)
		}

		r := bytes.NewReader(buf.Bytes())
		got, err := DecodeInteger(r, tc.n)
		if err != nil {
			t.Fatalf("n=%d value=%d: decode: %v", tc.n, tc.value, err)
		}
		if got != tc.value {
			t.Fatalf("n=%d value=%d: got %d", tc.n, tc.value, got)
		}
	}
}

func TestDecodeIntegerRejectsOverflow(t *testing.T) {
	// A prefix of all-ones followed by an unbounded run of continuation
	// bytes with the high bit set must eventually overflow 32 bits.
	buf := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	r := bytes.NewReader(buf)
	if _, err := DecodeInteger(r, 7); err != ErrIntegerOverflow {
		t.Fatalf("expected ErrIntegerOverflow, got %v", err)
	}
}

func TestEncodeIntegerRFCExample(t *testing.T) {
	// RFC 7541 C.1.1: 10 encoded with a 5-bit prefix is a single octet.
	var buf bytes.Buffer
	if err := EncodeInteger(&buf, 10, 5, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x0a}) {
		t.Fatalf("got %v", buf.Bytes())
	}

	// RFC 7541 C.1.2: 1337 encoded with a 5-bit prefix is three octets.
	buf.Reset()
	if err := EncodeInteger(&buf, 1337, 5, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x1f, 0x9a, 0x0a}) {
		t.Fatalf("got %v", buf.Bytes())
	}
}
