package hpack

// table is the combined static+dynamic index space HPACK encoders and
// decoders operate over: indices 1..61 address the static table, indices
// 62.. address the dynamic table in insertion order (62 is the most
// recently inserted entry).
type table struct {
	static  *staticTable
	dynamic *dynamicTable
}

func newTable(maxDynamicSize uint32) *table {
	return &table{
		static:  getStaticTable(),
		dynamic: newDynamicTable(maxDynamicSize),
	}
}

// get returns the entry at 1-based combined index i, or false if there is
// no such entry.
func (t *table) get(i uint32) (Entry, bool) {
	if i == 0 {
		return Entry{}, false
	}
	if i <= uint32(t.static.size()) {
		return t.static.get(i - 1)
	}
	return t.dynamic.get(i - uint32(t.static.size()) - 1)
}

// find looks up (name, value) across static then dynamic. It returns the
// combined index of an exact match (full=true) if one exists; otherwise
// the lowest-index name-only match, if any.
func (t *table) find(name, value []byte) (index uint32, full bool, found bool) {
	staticSize := uint32(t.static.size())

	if idx, ok := t.static.findExact(name, value); ok {
		return idx + 1, true, true
	}

	var nameOnlyIndex uint32
	haveNameOnly := false
	if idx, ok := t.static.findName(name); ok {
		nameOnlyIndex = idx + 1
		haveNameOnly = true
	}

	if idx, ok := t.dynamic.findExact(name, value); ok {
		return staticSize + idx + 1, true, true
	}

	if !haveNameOnly {
		if idx, ok := t.dynamic.findName(name); ok {
			nameOnlyIndex = staticSize + idx + 1
			haveNameOnly = true
		}
	}

	if haveNameOnly {
		return nameOnlyIndex, false, true
	}
	return 0, false, false
}

// insert prepends (name, value) to the dynamic table, evicting as needed.
func (t *table) insert(name, value []byte) {
	t.dynamic.insert(name, value)
}

// updateMaxDynamicSize sets a new ceiling on the dynamic table, evicting
// from the tail until the table fits within it.
func (t *table) updateMaxDynamicSize(n uint32) {
	t.dynamic.setMaxSize(n)
}

func (t *table) maxDynamicSize() uint32 {
	return t.dynamic.maxSize
}

func (t *table) dynamicSize() uint32 {
	return t.dynamic.currentSize()
}

func (t *table) dynamicLen() int {
	return t.dynamic.length()
}
