package huffman

type CodeTable map[rune]string

// AssignCodes walks the tree, writing each node's path into Node.Code and
// collecting the leaf codes. A tree that is a single leaf gets the empty
// code.
func AssignCodes(root *Node) CodeTable {
	if root == nil {
		return nil
	}
	codes := CodeTable{}
	root.Code = ""
	setCodes(root, codes)
	return codes
}

func setCodes(node *Node, codes CodeTable) {
	if node.IsLeaf() {
		codes[node.Symbol] = node.Code
		return
	}
	node.Left.Code = node.Code + "0"
	setCodes(node.Left, codes)

	node.Right.Code = node.Code + "1"
	setCodes(node.Right, codes)
}

// Bits is the total encoded length of freq under this table.
func (c CodeTable) Bits(freq *FrequencyTable) int {
	total := 0
	for _, e := range freq.Entries() {
		total += e.Freq * len(c[e.Symbol])
	}
	return total
}
