package huffman

import "bytes"

// Decoder walks the canonical Huffman matrix N bits at a time, where N is
// the read-width it was constructed with. A Decoder is not safe for
// concurrent use; each header block should use its own instance or call
// Reset between blocks.
type Decoder struct {
	m     *matrix
	acc   uint64
	nbits uint
	row   uint16
}

// NewDecoder builds a decoder for the given read-width (1..5).
func NewDecoder(width int) (*Decoder, error) {
	m, err := getMatrix(width)
	if err != nil {
		return nil, err
	}
	return &Decoder{m: m}, nil
}

// Reset clears all in-progress bit state so the decoder can start a new,
// independent bitstream.
func (d *Decoder) Reset() {
	d.acc = 0
	d.nbits = 0
	d.row = 0
}

// DecodeByte feeds one more input octet through the matrix, appending any
// symbols it completes to dst.
func (d *Decoder) DecodeByte(b byte, dst *bytes.Buffer) error {
	d.acc = (d.acc << 8) | uint64(b)
	d.nbits += 8

	w := d.m.width
	mask := uint64(1)<<w - 1

	for d.nbits >= w {
		shift := d.nbits - w
		idx := (d.acc >> shift) & mask
		c := d.m.rows[d.row][idx]
		d.nbits -= w

		if c.symbol == -1 {
			d.row = c.next
			continue
		}
		if c.symbol < 0 || c.symbol == EOS {
			return ErrInvalidInput
		}

		dst.WriteByte(byte(c.symbol))
		d.nbits += uint(c.leftover)
		d.row = 0
	}

	return nil
}

// Finalize first decodes any symbol completed by the fewer-than-width bits
// still buffered, appending it to dst, then validates the bits left over at
// the end of the bitstream: they must be strictly fewer than 8 bits and must
// be a prefix of the EOS code (all ones).
func (d *Decoder) Finalize(dst *bytes.Buffer) error {
	w := d.m.width
	for d.nbits > 0 {
		pad := w - d.nbits
		idx := (d.acc&(uint64(1)<<d.nbits-1))<<pad | (uint64(1)<<pad - 1)
		c := d.m.rows[d.row][idx]
		if c.symbol < 0 || w-uint(c.leftover) > d.nbits {
			break
		}
		if c.symbol == EOS {
			return ErrInvalidInput
		}
		dst.WriteByte(byte(c.symbol))
		d.nbits -= w - uint(c.leftover)
		d.row = 0
	}

	meta := d.m.meta[d.row]
	total := meta.prefixLen + int(d.nbits)

	if total >= 8 {
		return ErrInvalidInput
	}
	if !meta.allOnes {
		return ErrInvalidInput
	}
	if d.nbits > 0 {
		mask := uint64(1)<<d.nbits - 1
		if d.acc&mask != mask {
			return ErrInvalidInput
		}
	}
	return nil
}

// Decode is a convenience one-shot wrapper: it decodes the entire src
// bitstream at the given read-width and returns the recovered bytes.
func Decode(src []byte, width int) ([]byte, error) {
	d, err := NewDecoder(width)
	if err != nil {
		return nil, err
	}

	dst := &bytes.Buffer{}
	for _, b := range src {
		if err := d.DecodeByte(b, dst); err != nil {
			return nil, err
		}
	}
	if err := d.Finalize(dst); err != nil {
		return nil, err
	}

	return dst.Bytes(), nil
}
