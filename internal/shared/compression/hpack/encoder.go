package hpack

import (
	"bytes"
	"sync"
)

const (
	tagIndexed                = 0x80 // 1xxxxxxx, N=7
	tagLiteralWithIndexing    = 0x40 // 01xxxxxx, N=6
	tagDynamicTableSizeUpdate = 0x20 // 001xxxxx, N=5
	tagLiteralNeverIndexed    = 0x10 // 0001xxxx, N=4
	tagLiteralWithoutIndexing = 0x00 // 0000xxxx, N=4
)

// DefaultDynamicTableSize is RFC 7541's default dynamic table cap.
const DefaultDynamicTableSize = 4096

// Encoder translates logical header fields into HPACK wire representations
// and owns the combined indexing table those representations are encoded
// against. Each connection (or independent header-block producer) must use
// its own Encoder; instances share no state.
type Encoder struct {
	mu    sync.Mutex
	table *table
}

// NewEncoder creates an encoder with the given initial dynamic table size.
// A size of 0 selects DefaultDynamicTableSize.
func NewEncoder(maxDynamicSize uint32) *Encoder {
	if maxDynamicSize == 0 {
		maxDynamicSize = DefaultDynamicTableSize
	}
	return &Encoder{table: newTable(maxDynamicSize)}
}

// Encode writes the wire representation of input to dst.
func (e *Encoder) Encode(dst *bytes.Buffer, input encoderInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.encode(dst, input)
}

func (e *Encoder) encode(dst *bytes.Buffer, input encoderInput) error {
	switch v := input.(type) {
	case indexedInput:
		return e.encodeIndexed(dst, v)
	case indexedNameInput:
		return e.encodeIndexedName(dst, v)
	case literalInput:
		return e.encodeLiteral(dst, v)
	default:
		return ErrInvalidRepresentation
	}
}

func (e *Encoder) encodeIndexed(dst *bytes.Buffer, v indexedInput) error {
	if _, ok := e.table.get(v.index); !ok {
		return ErrInvalidIndex
	}
	return EncodeInteger(dst, v.index, 7, tagIndexed)
}

func (e *Encoder) encodeIndexedName(dst *bytes.Buffer, v indexedNameInput) error {
	entry, ok := e.table.get(v.index)
	if !ok {
		return ErrInvalidIndex
	}

	switch {
	case v.flags&WithIndexing != 0:
		e.table.insert(entry.Name, v.value)
		if err := EncodeInteger(dst, v.index, 6, tagLiteralWithIndexing); err != nil {
			return err
		}
	case v.flags&NeverIndexed != 0:
		if err := EncodeInteger(dst, v.index, 4, tagLiteralNeverIndexed); err != nil {
			return err
		}
	default:
		if err := EncodeInteger(dst, v.index, 4, tagLiteralWithoutIndexing); err != nil {
			return err
		}
	}

	return writeString(dst, v.value, v.flags&HuffmanValue != 0)
}

func (e *Encoder) encodeLiteral(dst *bytes.Buffer, v literalInput) error {
	if v.flags&BestFormat != 0 {
		if idx, full, found := e.table.find(v.name, v.value); found {
			if full {
				return e.encodeIndexed(dst, indexedInput{index: idx})
			}
			return e.encodeIndexedName(dst, indexedNameInput{
				index: idx,
				value: v.value,
				flags: v.flags &^ BestFormat,
			})
		}
	}

	var tag byte
	var n int
	switch {
	case v.flags&WithIndexing != 0:
		tag, n = tagLiteralWithIndexing, 6
	case v.flags&NeverIndexed != 0:
		tag, n = tagLiteralNeverIndexed, 4
	default:
		tag, n = tagLiteralWithoutIndexing, 4
	}

	if v.flags&WithIndexing != 0 {
		e.table.insert(v.name, v.value)
	}

	if err := EncodeInteger(dst, 0, n, tag); err != nil {
		return err
	}
	if err := writeString(dst, v.name, v.flags&HuffmanName != 0); err != nil {
		return err
	}
	return writeString(dst, v.value, v.flags&HuffmanValue != 0)
}

// UpdateMaxDynamicSize applies a new dynamic table ceiling (evicting as
// needed) and emits the corresponding size-update signal.
func (e *Encoder) UpdateMaxDynamicSize(dst *bytes.Buffer, n uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.table.updateMaxDynamicSize(n)
	return EncodeInteger(dst, n, 5, tagDynamicTableSizeUpdate)
}

// MaxDynamicSize returns the encoder's current dynamic table ceiling.
func (e *Encoder) MaxDynamicSize() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.table.maxDynamicSize()
}

// DynamicTableSize returns the current byte-accounted size of the dynamic
// table.
func (e *Encoder) DynamicTableSize() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.table.dynamicSize()
}

// DynamicEntries returns a copy of the dynamic table's current contents,
// most recently inserted first.
func (e *Encoder) DynamicEntries() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Entry, e.table.dynamicLen())
	for i := range out {
		out[i], _ = e.table.dynamic.get(uint32(i))
	}
	return out
}

// Reset discards the dynamic table, starting a fresh one at the same
// ceiling. The instance must not be reused across an aborted operation
// without resetting first.
func (e *Encoder) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table = newTable(e.table.maxDynamicSize())
}
