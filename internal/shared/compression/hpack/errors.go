package hpack

import "errors"

// Error kinds, kept as a flat taxonomy of sentinel values rather than a
// hierarchy of custom types so callers can compare with errors.Is after
// the usual fmt.Errorf("...: %w") wrapping.
var (
	// ErrInvalidIndex is returned when an encoder is asked to reference
	// a table index that has no entry.
	ErrInvalidIndex = errors.New("hpack: invalid index")

	// ErrInvalidInput is returned when the Huffman decoder encounters an
	// illegal bit sequence: a fully decoded EOS symbol, non-ones or
	// oversized padding, or no legal completion at end of input.
	ErrInvalidInput = errors.New("hpack: invalid huffman input")

	// ErrIntegerOverflow is returned when an HPACK integer's payload
	// would exceed 32 bits.
	ErrIntegerOverflow = errors.New("hpack: integer overflow")

	// ErrInvalidRepresentation is returned when a first octet's bit
	// pattern, or the bytes following it, do not form any valid
	// representation.
	ErrInvalidRepresentation = errors.New("hpack: invalid representation")

	// ErrSizeLimitExceeded is returned when a dynamic-table-size-update
	// value exceeds the protocol-imposed ceiling.
	ErrSizeLimitExceeded = errors.New("hpack: size limit exceeded")

	// ErrIoError is returned when the underlying sink or source reports
	// failure.
	ErrIoError = errors.New("hpack: io error")
)
