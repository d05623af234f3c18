package codec

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"

	"github.com/jakegut/gohuff/huffman"
)

type stage int

const (
	counting stage = iota
	building
	assigning
	encoding
	done
)

var compressorIDs int64

// Huffman holds the input of the last Compress call and everything derived
// from it.
type Huffman struct {
	opts *Options

	stage stage

	uncompressed string
	compressed   *string
	freq         *huffman.FrequencyTable
	tree         *huffman.Node
	codes        huffman.CodeTable

	log func(msg string, args ...interface{})
}

func New(opts *Options) *Huffman {
	if opts == nil {
		opts = NewOptions()
	}
	id := atomic.AddInt64(&compressorIDs, 1)
	return &Huffman{
		opts: opts,
		log: func(msg string, args ...interface{}) {
			if !opts.Verbose || opts.Logger == nil {
				return
			}
			msg = fmt.Sprintf("[huffman %02d]\t", id) + msg
			opts.Logger.Printf(msg, args...)
		},
	}
}

// Compress replaces all outputs with those derived from input. Input that is
// not valid UTF-8 is rejected with huffman.ErrInvalidUTF8. A symbol with no
// code means the pipeline is broken; either way every derived output is left
// absent.
func (h *Huffman) Compress(input string) error {
	h.uncompressed = input
	h.reset()

	if !utf8.ValidString(input) {
		return huffman.ErrInvalidUTF8
	}

	for h.stage = counting; h.stage != done; h.stage++ {
		switch h.stage {
		case counting:
			h.freq = huffman.Count(input)
			h.log("counted %d symbols, %d distinct", h.freq.Total(), h.freq.Len())
		case building:
			h.tree = huffman.Build(h.freq)
			if h.tree == nil {
				h.log("empty input, nothing to encode")
				h.stage = done
				return nil
			}
			h.log("built tree, root frequency %d", h.tree.Freq)
		case assigning:
			h.codes = huffman.AssignCodes(h.tree)
			if h.tree.IsLeaf() && h.opts.SingleSymbolBit {
				h.tree.Code = "0"
				h.codes[h.tree.Symbol] = "0"
			}
			h.log("assigned %d codes", len(h.codes))
		case encoding:
			msg, err := huffman.Encode(input, h.codes)
			if err != nil {
				h.reset()
				return fmt.Errorf("encoding: %w", err)
			}
			h.compressed = &msg
			h.log("encoded %d bits", len(msg))
		}
	}
	return nil
}

func (h *Huffman) reset() {
	h.compressed = nil
	h.freq = nil
	h.tree = nil
	h.codes = nil
}

func (h *Huffman) UncompressedData() string {
	return h.uncompressed
}

// CompressedData reports false when there was nothing to encode. A present
// but empty message comes from a one-symbol input.
func (h *Huffman) CompressedData() (string, bool) {
	if h.compressed == nil {
		return "", false
	}
	return *h.compressed, true
}

func (h *Huffman) HuffmanTree() *huffman.Node {
	return h.tree
}

func (h *Huffman) Codes() huffman.CodeTable {
	return h.codes
}

func (h *Huffman) Frequencies() *huffman.FrequencyTable {
	return h.freq
}

// CompressionPercentage is 0 when there is no compressed message.
func (h *Huffman) CompressionPercentage() float64 {
	msg, ok := h.CompressedData()
	if !ok {
		return 0
	}
	return huffman.Percentage(len([]rune(h.uncompressed)), len(msg))
}

func (h *Huffman) Packed() ([]byte, error) {
	msg, _ := h.CompressedData()
	return huffman.Pack(msg)
}

func (h *Huffman) Decompress() (string, error) {
	msg, _ := h.CompressedData()
	return huffman.Decode(h.tree, msg)
}
