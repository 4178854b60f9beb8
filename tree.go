package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
)

// NoNode is returned by Tree.Child when the requested child does not exist.
const NoNode = -1

// Tree is a Huffman code tree.  Nodes live in a single arena and are
// addressed by index; a node is either a leaf carrying one Symbol or an
// internal node carrying up to two children.
//
// Trees built by BuildTree have exactly two children at every internal node,
// except for the one-symbol case, where the root has only a left child so
// that the lone symbol still receives the 1-bit code "0".
//
type Tree struct {
	nodes []treeNode
	root  int32
}

type treeNode struct {
	symbol Symbol // InvalidSymbol for internal nodes
	weight uint64
	left   int32
	right  int32
}

func (t *Tree) newLeaf(symbol Symbol, weight uint64) int32 {
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{symbol: symbol, weight: weight, left: NoNode, right: NoNode})
	return index
}

func (t *Tree) newInternal(left, right int32, weight uint64) int32 {
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{symbol: InvalidSymbol, weight: weight, left: left, right: right})
	return index
}

// BuildTree builds a Huffman tree whose leaves are exactly the given
// symbols, minimizing the weighted path length.
//
// Nodes are merged lowest weight first.  Ties are broken by insertion order:
// leaves in the order given, then internal nodes in the order they were
// created.  The first node extracted becomes the left child.  Hence the same
// entries always produce the same tree.
//
func BuildTree(entries []FrequencyEntry) (*Tree, error) {
	const op = "build tree"

	numEntries := len(entries)
	if numEntries == 0 {
		return nil, &Error{Kind: BuildError, Op: op, Err: ErrEmptyFrequencies}
	}
	if numEntries > NumSymbols {
		return nil, &Error{Kind: BuildError, Op: op, Err: fmt.Errorf("%w: got %d, max %d", ErrTooManySymbols, numEntries, NumSymbols)}
	}

	var seen [NumSymbols]bool
	t := &Tree{nodes: make([]treeNode, 0, 2*numEntries)}
	h := nodeHeap{tree: t, list: make([]int32, 0, numEntries)}
	for _, entry := range entries {
		if !entry.Symbol.IsValid() {
			return nil, &Error{Kind: BuildError, Op: op, Err: fmt.Errorf("invalid symbol %d", entry.Symbol)}
		}
		if seen[entry.Symbol] {
			return nil, &Error{Kind: BuildError, Op: op, Err: fmt.Errorf("duplicate symbol %d", entry.Symbol)}
		}
		if entry.Count == 0 {
			return nil, &Error{Kind: BuildError, Op: op, Err: fmt.Errorf("symbol %d has a count of 0", entry.Symbol)}
		}
		seen[entry.Symbol] = true
		h.list = append(h.list, t.newLeaf(entry.Symbol, entry.Count))
	}

	// A lone leaf would get a 0-bit code, so give it a parent.
	if numEntries == 1 {
		leaf := h.list[0]
		t.root = t.newInternal(leaf, NoNode, t.nodes[leaf].weight)
		return t, nil
	}

	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)
		sum := addSaturating(t.nodes[a].weight, t.nodes[b].weight)
		heap.Push(&h, t.newInternal(a, b, sum))
	}
	t.root = heap.Pop(&h).(int32)
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int {
	return int(t.root)
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf returns true iff the given node is a leaf.
func (t *Tree) IsLeaf(index int) bool {
	return t.nodes[index].symbol >= 0
}

// Symbol returns the Symbol carried by a leaf, or InvalidSymbol for an
// internal node.
func (t *Tree) Symbol(index int) Symbol {
	return t.nodes[index].symbol
}

// Weight returns the aggregate weight of the given node.  Trees rebuilt from
// a compressed file header carry no weights.
func (t *Tree) Weight(index int) uint64 {
	return t.nodes[index].weight
}

// Child returns the left (bit == false) or right (bit == true) child of the
// given node, or NoNode.
func (t *Tree) Child(index int, bit bool) int {
	node := &t.nodes[index]
	if bit {
		return int(node.right)
	}
	return int(node.left)
}

// walk visits every node in pre-order, left before right, passing the path
// from the root as a Code.
func (t *Tree) walk(fn func(index int32, path Code)) {
	// x=0 → visit the left child next
	// x=1 → visit the right child next
	// x=2 → both children have been visited
	type stackItem struct {
		index int32
		path  Code
		x     byte
	}

	stack := make([]stackItem, 0, 16)
	push := func(index int32, path Code) {
		fn(index, path)
		stack = append(stack, stackItem{index: index, path: path})
	}

	push(t.root, "")
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node := t.nodes[top.index]
		x := top.x
		top.x++
		switch x {
		case 0:
			if node.left != NoNode {
				push(node.left, top.path.Append(false))
			}
		case 1:
			if node.right != NoNode {
				push(node.right, top.path.Append(true))
			}
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(index int32, path Code) {
		node := t.nodes[index]
		if node.symbol >= 0 {
			fmt.Fprintf(&buf, "\tNode(%s) = leaf %d, weight %d\n", path, node.symbol, node.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%s) = internal, weight %d\n", path, node.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
