package huffman

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoTree         = errors.New("no code tree")
	ErrInvalidBit     = errors.New("invalid bit")
	ErrIncompleteCode = errors.New("incomplete encoding")
)

// Decode walks root bit by bit, emitting a symbol at every leaf. When root is
// itself a leaf each '0' bit stands for one symbol, so a message encoded with
// the empty single-symbol code decodes to the empty string.
func Decode(root *Node, bits string) (string, error) {
	if root == nil {
		if bits != "" {
			return "", ErrNoTree
		}
		return "", nil
	}

	var buf strings.Builder

	if root.IsLeaf() {
		for i, bit := range bits {
			if bit != '0' {
				return "", fmt.Errorf("%w %q at offset %d", ErrInvalidBit, bit, i)
			}
			buf.WriteRune(root.Symbol)
		}
		return buf.String(), nil
	}

	node := root
	curDepth := 0
	for i, bit := range bits {
		switch bit {
		case '0':
			node = node.Left
		case '1':
			node = node.Right
		default:
			return "", fmt.Errorf("%w %q at offset %d", ErrInvalidBit, bit, i)
		}
		curDepth++

		if node.IsLeaf() {
			buf.WriteRune(node.Symbol)
			node = root
			curDepth = 0
		}
	}

	if node != root {
		return "", fmt.Errorf("%w: %d trailing bits", ErrIncompleteCode, curDepth)
	}

	return buf.String(), nil
}
