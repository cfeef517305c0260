package hpack

import (
	"bytes"
	"fmt"

	"hpackit/internal/shared/compression/huffman"
)

// writeString appends the HPACK string representation of data: a 7-bit
// prefixed length with the H bit signaling Huffman encoding, followed by
// the (possibly Huffman-encoded) octets.
func writeString(buf *bytes.Buffer, data []byte, huffmanEncode bool) error {
	if !huffmanEncode {
		if err := EncodeInteger(buf, uint32(len(data)), 7, 0x00); err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}

	var encoded bytes.Buffer
	huffman.Encode(&encoded, data)

	if err := EncodeInteger(buf, uint32(encoded.Len()), 7, 0x80); err != nil {
		return err
	}
	buf.Write(encoded.Bytes())
	return nil
}

// readString reads an HPACK string representation from r, Huffman-decoding
// it at the given read-width if the H bit is set.
func readString(r *bytes.Reader, huffmanWidth int) ([]byte, error) {
	peek, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("hpack: read string prefix: %w", ErrIoError)
	}
	if err := r.UnreadByte(); err != nil {
		return nil, fmt.Errorf("hpack: unread string prefix: %w", ErrIoError)
	}

	huffmanEncoded := peek&0x80 != 0

	length, err := DecodeInteger(r, 7)
	if err != nil {
		return nil, fmt.Errorf("hpack: read string length: %w", err)
	}

	if length == 0 {
		return []byte{}, nil
	}

	if int(length) > r.Len() {
		return nil, fmt.Errorf("hpack: string length %d exceeds remaining input: %w", length, ErrInvalidRepresentation)
	}

	raw := make([]byte, length)
	if _, err := r.Read(raw); err != nil {
		return nil, fmt.Errorf("hpack: read string bytes: %w", ErrIoError)
	}

	if !huffmanEncoded {
		return raw, nil
	}

	decoded, err := huffman.Decode(raw, huffmanWidth)
	if err != nil {
		return nil, fmt.Errorf("hpack: huffman decode: %w", ErrInvalidInput)
	}
	return decoded, nil
}
