package hpack

import (
	"bytes"
	"fmt"
	"sync"
)

// Decoder reverses the representations an Encoder produces, maintaining its
// own combined indexing table. A Decoder must be paired with exactly one
// Encoder's output stream; the two tables must stay in lockstep or the
// decoded fields will be wrong.
type Decoder struct {
	mu              sync.Mutex
	table           *table
	huffmanWidth    int
	protocolCeiling uint32
}

// NewDecoder creates a decoder. protocolCeiling is the largest dynamic table
// size the peer is permitted to request via a size-update signal (typically
// the value this side advertised out of band); huffmanWidth selects the
// Huffman matrix read-width (1-5 bits per step; 4 is a reasonable default).
func NewDecoder(protocolCeiling uint32, huffmanWidth int) *Decoder {
	if protocolCeiling == 0 {
		protocolCeiling = DefaultDynamicTableSize
	}
	return &Decoder{
		table:           newTable(protocolCeiling),
		huffmanWidth:    huffmanWidth,
		protocolCeiling: protocolCeiling,
	}
}

// DecodeBlock decodes every representation in src and returns the resulting
// header fields in order. A dynamic-table-size-update is only legal before
// any other representation in the block; one appearing afterward is a
// protocol error.
func (d *Decoder) DecodeBlock(src []byte) ([]Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r := bytes.NewReader(src)
	fields := make([]Entry, 0, 8)
	sawField := false

	for r.Len() > 0 {
		entry, isSizeUpdate, err := d.decodeOne(r)
		if err != nil {
			return nil, err
		}
		if isSizeUpdate {
			if sawField {
				return nil, fmt.Errorf("hpack: size update after header field: %w", ErrInvalidRepresentation)
			}
			continue
		}
		sawField = true
		fields = append(fields, entry)
	}

	return fields, nil
}

// decodeOne reads a single representation. When isSizeUpdate is true, entry
// is the zero value and carries no header field.
func (d *Decoder) decodeOne(r *bytes.Reader) (entry Entry, isSizeUpdate bool, err error) {
	first, err := r.ReadByte()
	if err != nil {
		return Entry{}, false, fmt.Errorf("hpack: read representation byte: %w", ErrIoError)
	}
	if err := r.UnreadByte(); err != nil {
		return Entry{}, false, fmt.Errorf("hpack: unread representation byte: %w", ErrIoError)
	}

	switch {
	case first&0x80 != 0:
		entry, err = d.decodeIndexed(r)
		return entry, false, err
	case first&0x40 != 0:
		entry, err = d.decodeLiteral(r, 6, true)
		return entry, false, err
	case first&0x20 != 0:
		err = d.decodeSizeUpdate(r)
		return Entry{}, true, err
	case first&0x10 != 0:
		entry, err = d.decodeLiteral(r, 4, false)
		return entry, false, err
	default:
		entry, err = d.decodeLiteral(r, 4, false)
		return entry, false, err
	}
}

func (d *Decoder) decodeIndexed(r *bytes.Reader) (Entry, error) {
	index, err := DecodeInteger(r, 7)
	if err != nil {
		return Entry{}, err
	}
	if index == 0 {
		return Entry{}, ErrInvalidIndex
	}
	entry, ok := d.table.get(index)
	if !ok {
		return Entry{}, ErrInvalidIndex
	}
	return Entry{Name: cloneBytes(entry.Name), Value: cloneBytes(entry.Value)}, nil
}

// decodeLiteral handles all three literal representations: the name is
// either an index reference or an inline string (index 0), and the value is
// always an inline string. withIndexing inserts the decoded field into the
// dynamic table. The never-indexed bit is purely advisory on the wire and
// does not change decoding, so callers that need to preserve it dispatch on
// the representation byte themselves before calling in.
func (d *Decoder) decodeLiteral(r *bytes.Reader, n int, withIndexing bool) (Entry, error) {
	index, err := DecodeInteger(r, n)
	if err != nil {
		return Entry{}, err
	}

	var name []byte
	if index == 0 {
		name, err = readString(r, d.huffmanWidth)
		if err != nil {
			return Entry{}, err
		}
	} else {
		ref, ok := d.table.get(index)
		if !ok {
			return Entry{}, ErrInvalidIndex
		}
		name = cloneBytes(ref.Name)
	}

	value, err := readString(r, d.huffmanWidth)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{Name: name, Value: value}
	if withIndexing {
		d.table.insert(entry.Name, entry.Value)
	}
	return entry, nil
}

func (d *Decoder) decodeSizeUpdate(r *bytes.Reader) error {
	n, err := DecodeInteger(r, 5)
	if err != nil {
		return err
	}
	if n > d.protocolCeiling {
		return fmt.Errorf("hpack: requested dynamic table size %d exceeds ceiling %d: %w", n, d.protocolCeiling, ErrSizeLimitExceeded)
	}
	d.table.updateMaxDynamicSize(n)
	return nil
}

// MaxDynamicSize returns the decoder's current dynamic table ceiling.
func (d *Decoder) MaxDynamicSize() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.table.maxDynamicSize()
}

// DynamicTableSize returns the current byte-accounted size of the dynamic
// table.
func (d *Decoder) DynamicTableSize() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.table.dynamicSize()
}

// DynamicEntries returns a copy of the dynamic table's current contents,
// most recently inserted first.
func (d *Decoder) DynamicEntries() []Entry {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Entry, d.table.dynamicLen())
	for i := range out {
		out[i], _ = d.table.dynamic.get(uint32(i))
	}
	return out
}

// Reset discards the dynamic table, starting a fresh one at the same
// ceiling.
func (d *Decoder) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.table = newTable(d.protocolCeiling)
}
