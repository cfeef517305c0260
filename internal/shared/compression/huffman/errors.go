package huffman

import "errors"

// ErrInvalidInput is returned by Decode when the bit sequence contains an
// illegal EOS occurrence, non-ones padding, padding of 8 bits or more, or
// has no legal completion at end of input.
var ErrInvalidInput = errors.New("huffman: invalid input")
