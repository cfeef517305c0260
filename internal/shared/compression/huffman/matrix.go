package huffman

import (
	"fmt"
	"sync"
)

// invalidSymbol marks a matrix cell that cannot be reached by any legal
// canonical Huffman sequence; decoding into one is always a decode error.
const invalidSymbol = -2

// trieNode is one node of the binary trie built from the canonical code
// table. Leaves carry a symbol; internal nodes carry none.
type trieNode struct {
	children [2]*trieNode
	symbol   int32
	depth    int
	allOnes  bool
}

func newTrieNode(depth int, allOnes bool) *trieNode {
	return &trieNode{symbol: -1, depth: depth, allOnes: allOnes}
}

func buildTrie() *trieNode {
	root := newTrieNode(0, true)
	for sym := 0; sym < symbolCount; sym++ {
		length := codeTable[sym].length
		code := codeTable[sym].code
		node := root
		for i := int(length) - 1; i >= 0; i-- {
			bit := (code >> uint(i)) & 1
			child := node.children[bit]
			if child == nil {
				child = newTrieNode(node.depth+1, node.allOnes && bit == 1)
				node.children[bit] = child
			}
			node = child
		}
		node.symbol = int32(sym)
	}
	return root
}

// cell is one transition target within a matrix row: either a terminal
// symbol (with the count of bits that must be rewound) or a pointer to the
// next row to continue the walk from.
type cell struct {
	symbol   int32
	leftover uint8
	next     uint16
}

// rowMeta carries the trie depth and the "every bit on the path so far was
// a 1" flag for the row's trie node, used to validate end-of-stream padding.
type rowMeta struct {
	prefixLen int
	allOnes   bool
}

// matrix is the flattened N-bit-at-a-time transition table for one
// read-width, built once from the canonical trie and reused by every
// decoder instance constructed with that width.
type matrix struct {
	width uint
	rows  [][]cell
	meta  []rowMeta
}

func buildMatrix(width uint) *matrix {
	root := buildTrie()

	rowOf := map[*trieNode]uint16{root: 0}
	order := []*trieNode{root}

	m := &matrix{width: width}
	size := 1 << width

	for i := 0; i < len(order); i++ {
		node := order[i]
		row := make([]cell, size)

		for v := 0; v < size; v++ {
			cur := node
			consumed := uint(0)
			sym := int32(-1)

			for b := int(width) - 1; b >= 0; b-- {
				bit := (v >> uint(b)) & 1
				next := cur.children[bit]
				if next == nil {
					sym = invalidSymbol
					consumed = width
					break
				}
				cur = next
				consumed++
				if cur.symbol >= 0 {
					sym = cur.symbol
					break
				}
			}

			if sym != -1 {
				row[v] = cell{symbol: sym, leftover: uint8(width - consumed)}
				continue
			}

			idx, ok := rowOf[cur]
			if !ok {
				idx = uint16(len(order))
				rowOf[cur] = idx
				order = append(order, cur)
			}
			row[v] = cell{symbol: -1, next: idx}
		}

		m.rows = append(m.rows, row)
	}

	m.meta = make([]rowMeta, len(order))
	for node, idx := range rowOf {
		m.meta[idx] = rowMeta{prefixLen: node.depth, allOnes: node.allOnes}
	}

	return m
}

var (
	matrixCache [6]*matrix // index by read-width 1..5
	matrixOnce  [6]sync.Once
)

// getMatrix returns the shared decode matrix for the given read-width,
// building it lazily the first time it's requested.
func getMatrix(width int) (*matrix, error) {
	if width < 1 || width > 5 {
		return nil, fmt.Errorf("huffman: invalid read-width %d (must be 1..5)", width)
	}
	matrixOnce[width].Do(func() {
		matrixCache[width] = buildMatrix(uint(width))
	})
	return matrixCache[width], nil
}
