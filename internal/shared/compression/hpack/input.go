package hpack

// Flags is the bitmask passed alongside an encoder input describing how it
// should be represented on the wire. The bits are independent and may be
// combined freely.
type Flags uint8

const (
	HuffmanName  Flags = 1 << iota // encode the name octets as Huffman
	HuffmanValue                   // encode the value octets as Huffman
	WithIndexing                   // insert the field into the dynamic table
	NeverIndexed                   // mark the field as never-indexed
	BestFormat                     // let the encoder pick the shortest representation
)

// encoderInput is the tagged shape the encoder dispatches on. The three
// cases below cover everything the wire format can express; Go has no
// owned/borrowed distinction so there is no need for the extra variants a
// language with explicit ownership would carry.
type encoderInput interface {
	isEncoderInput()
}

type indexedInput struct {
	index uint32
}

type indexedNameInput struct {
	index uint32
	value []byte
	flags Flags
}

type literalInput struct {
	name  []byte
	value []byte
	flags Flags
}

func (indexedInput) isEncoderInput()     {}
func (indexedNameInput) isEncoderInput() {}
func (literalInput) isEncoderInput()     {}

// Indexed references an existing table entry by its combined 1-based
// index and emits it verbatim.
func Indexed(index uint32) encoderInput {
	return indexedInput{index: index}
}

// IndexedName reuses an existing entry's name with a new literal value.
func IndexedName(index uint32, value []byte, flags Flags) encoderInput {
	return indexedNameInput{index: index, value: value, flags: flags}
}

// Literal emits both name and value as literals.
func Literal(name, value []byte, flags Flags) encoderInput {
	return literalInput{name: name, value: value, flags: flags}
}
