package huffman

// BitsPerSymbol is the fixed-width baseline every input symbol is charged.
const BitsPerSymbol = 8

// Percentage is the size reduction of compressedBits relative to symbols
// stored at BitsPerSymbol each. It is negative when the code expands the
// message and 0 when there are no symbols.
func Percentage(symbols, compressedBits int) float64 {
	if symbols == 0 {
		return 0
	}
	uncompBits := symbols * BitsPerSymbol
	return float64(uncompBits-compressedBits) / float64(uncompBits) * 100
}
