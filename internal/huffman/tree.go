package huffman

import "container/heap"

// node is a Huffman tree node: a leaf carries a symbol, an internal node
// carries two children. freq drives the min-heap order.
type node struct {
	freq        uint64
	symbol      int // -1 for internal nodes
	left, right int // indices into the nodes slice, -1 if none
}

type nodeHeap struct {
	nodes []node
	idx   []int // indices into nodes, heap-ordered
	seq   []int // insertion sequence, for stable tie-breaking
}

func (h *nodeHeap) Len() int { return len(h.idx) }
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.idx[i], h.idx[j]
	if h.nodes[a].freq != h.nodes[b].freq {
		return h.nodes[a].freq < h.nodes[b].freq
	}
	return h.seq[a] < h.seq[b]
}
func (h *nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *nodeHeap) Push(x any)    { h.idx = append(h.idx, x.(int)) }
func (h *nodeHeap) Pop() any {
	n := len(h.idx)
	v := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return v
}

// buildDepths runs the standard min-heap Huffman construction over symbols
// with nonzero frequency and returns the tree depth (unlimited code
// length) of every symbol, indexed by symbol id.
func buildDepths(freq []uint32) (depth []uint8, numSymbols int) {
	depth = make([]uint8, len(freq))

	var nodes []node
	var seq []int
	h := &nodeHeap{}

	for sym, f := range freq {
		if f == 0 {
			continue
		}
		nodes = append(nodes, node{freq: uint64(f), symbol: sym, left: -1, right: -1})
		seq = append(seq, len(seq))
		h.idx = append(h.idx, len(nodes)-1)
	}
	numSymbols = len(nodes)
	h.nodes = nodes
	h.seq = seq
	heap.Init(h)

	if numSymbols == 0 {
		return depth, 0
	}
	if numSymbols == 1 {
		depth[nodes[0].symbol] = 1
		return depth, 1
	}

	for h.Len() > 1 {
		ai := heap.Pop(h).(int)
		bi := heap.Pop(h).(int)
		a, b := h.nodes[ai], h.nodes[bi]
		merged := node{freq: a.freq + b.freq, symbol: -1, left: ai, right: bi}
		h.nodes = append(h.nodes, merged)
		h.seq = append(h.seq, len(h.seq))
		mi := len(h.nodes) - 1
		heap.Push(h, mi)
	}

	rootIdx := h.idx[0]
	var walk func(i int, d uint8)
	walk = func(i int, d uint8) {
		n := h.nodes[i]
		if n.symbol >= 0 {
			depth[n.symbol] = d
			return
		}
		walk(n.left, d+1)
		walk(n.right, d+1)
	}
	walk(rootIdx, 0)

	return depth, numSymbols
}
