package huffman

import (
	"container/heap"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Node is either a leaf holding a symbol or an internal node with exactly
// two children. A node is a leaf iff Left is nil.
type Node struct {
	Symbol rune
	Freq   int
	Left   *Node
	Right  *Node

	// Code is the path from the root, filled in by AssignCodes.
	Code string

	seq int
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil
}

// Leaves returns the leaves depth-first, left before right.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []*Node{n}
	}
	return append(n.Left.Leaves(), n.Right.Leaves()...)
}

func (n *Node) label() string {
	if n.IsLeaf() {
		return fmt.Sprintf("[%q %d]", n.Symbol, n.Freq)
	}
	return fmt.Sprintf("[%d]", n.Freq)
}

func (n *Node) structure() string {
	if n.IsLeaf() {
		return n.label()
	}
	filler := "\n" + strings.Repeat(" ", utf8.RuneCountInString(n.label())+1)
	left := strings.Split(n.Left.structure(), "\n")
	right := strings.Split(n.Right.structure(), "\n")
	return fmt.Sprintf("%s─┬─%s%s└─%s",
		n.label(),
		strings.Join(left, filler+"│ "),
		filler,
		strings.Join(right, filler+"  "),
	)
}

// String draws the tree with the left branch on top.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.structure()
}

type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].Freq != h[j].Freq {
		return h[i].Freq < h[j].Freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// Build constructs the code tree for freq. Ties on frequency go to the node
// created first; sequence numbers are local to a single call. Returns nil for
// an empty table, and the lone leaf itself when there is one symbol.
func Build(freq *FrequencyTable) *Node {
	if freq == nil || freq.Len() == 0 {
		return nil
	}

	seq := 0
	newNode := func(n *Node) *Node {
		n.seq = seq
		seq++
		return n
	}

	h := make(nodeHeap, 0, freq.Len())
	for _, e := range freq.Entries() {
		h = append(h, newNode(&Node{Symbol: e.Symbol, Freq: e.Freq}))
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, newNode(&Node{
			Freq:  a.Freq + b.Freq,
			Left:  a,
			Right: b,
		}))
	}

	return heap.Pop(&h).(*Node)
}
