package huffman

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrSymbolNotFound = errors.New("symbol not found in code table")
	ErrInvalidUTF8    = errors.New("input is not valid UTF-8")
)

// Encode concatenates the code of every symbol in input. A symbol missing from
// codes means the table was built for another input and is reported as
// ErrSymbolNotFound. Invalid UTF-8 is rejected rather than folded into
// utf8.RuneError.
func Encode(input string, codes CodeTable) (string, error) {
	var buf strings.Builder
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if r == utf8.RuneError && size == 1 {
			return "", fmt.Errorf("%w: byte %#x at offset %d", ErrInvalidUTF8, input[i], i)
		}
		code, ok := codes[r]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrSymbolNotFound, r)
		}
		buf.WriteString(code)
		i += size
	}
	return buf.String(), nil
}
