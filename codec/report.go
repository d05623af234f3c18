package codec

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"text/tabwriter"

	"github.com/jakegut/gohuff/huffman"
	"golang.org/x/net/http2/hpack"
)

// StaticBits is the length of the input under the HPACK static Huffman code,
// rounded up to whole bytes.
func (h *Huffman) StaticBits() int {
	return int(hpack.HuffmanEncodeLength(h.uncompressed)) * 8
}

// StaticPercentage compares the HPACK static code with 8 bits per input byte.
func (h *Huffman) StaticPercentage() float64 {
	return huffman.Percentage(len(h.uncompressed), h.StaticBits())
}

func (h *Huffman) Report() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "input: %q\n", h.uncompressed)

	msg, ok := h.CompressedData()
	if !ok {
		buf.WriteString("nothing to encode\n")
		return buf.String()
	}

	buf.WriteString("\nfrequencies / codes:\n")
	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	for _, e := range h.freq.Entries() {
		fmt.Fprintf(tw, "  %q\t%d\t%q\n", e.Symbol, e.Freq, h.codes[e.Symbol])
	}
	tw.Flush()

	buf.WriteString("\ntree:\n")
	buf.WriteString(h.tree.String())
	buf.WriteString("\n\n")

	fmt.Fprintf(&buf, "compressed (%d bits): %s\n", len(msg), msg)
	if packed, err := h.Packed(); err == nil && len(packed) > 0 {
		buf.WriteString(hex.Dump(packed))
	}
	fmt.Fprintf(&buf, "compression: %.2f%%\n", h.CompressionPercentage())
	fmt.Fprintf(&buf, "hpack static: %.2f%%\n", h.StaticPercentage())

	return buf.String()
}
