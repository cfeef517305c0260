package hpack

import "bytes"

// dynamicTable is the bounded FIFO of recently inserted header fields
// (RFC 7541 §2.3.2). New entries are prepended; eviction removes from the
// tail (the oldest entry) until the byte-accounted size fits within
// maxSize.
type dynamicTable struct {
	entries []Entry // entries[0] is the most recently inserted
	size    uint32
	maxSize uint32
}

func newDynamicTable(maxSize uint32) *dynamicTable {
	return &dynamicTable{
		entries: make([]Entry, 0, 32),
		maxSize: maxSize,
	}
}

// insert adds name/value to the head of the table, evicting from the tail
// as needed. If the entry itself is larger than maxSize, the table is
// emptied and the entry is not inserted (RFC 7541 §4.4).
func (dt *dynamicTable) insert(name, value []byte) {
	entry := Entry{Name: cloneBytes(name), Value: cloneBytes(value)}
	entrySize := entry.Size()

	if entrySize > dt.maxSize {
		dt.evictAll()
		return
	}

	for dt.size+entrySize > dt.maxSize && len(dt.entries) > 0 {
		dt.evictOldest()
	}

	dt.entries = append(dt.entries, Entry{})
	copy(dt.entries[1:], dt.entries)
	dt.entries[0] = entry
	dt.size += entrySize
}

func (dt *dynamicTable) length() int {
	return len(dt.entries)
}

// get retrieves entry at 0-based dynamic index (0 = most recent / wire
// index 62).
func (dt *dynamicTable) get(index uint32) (Entry, bool) {
	if index >= uint32(len(dt.entries)) {
		return Entry{}, false
	}
	return dt.entries[index], true
}

func (dt *dynamicTable) findExact(name, value []byte) (uint32, bool) {
	for i, e := range dt.entries {
		if bytes.Equal(e.Name, name) && bytes.Equal(e.Value, value) {
			return uint32(i), true
		}
	}
	return 0, false
}

func (dt *dynamicTable) findName(name []byte) (uint32, bool) {
	for i, e := range dt.entries {
		if bytes.Equal(e.Name, name) {
			return uint32(i), true
		}
	}
	return 0, false
}

// setMaxSize changes the ceiling and evicts from the tail until the table
// fits within it again.
func (dt *dynamicTable) setMaxSize(maxSize uint32) {
	dt.maxSize = maxSize
	for dt.size > dt.maxSize && len(dt.entries) > 0 {
		dt.evictOldest()
	}
}

func (dt *dynamicTable) currentSize() uint32 {
	return dt.size
}

func (dt *dynamicTable) evictOldest() {
	if len(dt.entries) == 0 {
		return
	}
	last := len(dt.entries) - 1
	dt.size -= dt.entries[last].Size()
	dt.entries = dt.entries[:last]
}

func (dt *dynamicTable) evictAll() {
	dt.entries = dt.entries[:0]
	dt.size = 0
}
