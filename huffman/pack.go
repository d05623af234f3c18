package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack stores a '0'/'1' string MSB first, zero padding the last byte.
func Pack(bits string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	for i, bit := range bits {
		switch bit {
		case '0', '1':
			if err := w.WriteBool(bit == '1'); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidBit, bit, i)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack reads the first n bits of data back into a '0'/'1' string.
func Unpack(data []byte, n int) (string, error) {
	if n > len(data)*8 {
		return "", fmt.Errorf("%w: want %d bits, have %d", ErrIncompleteCode, n, len(data)*8)
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			out = append(out, '1')
		} else {
			out = append(out, '0')
		}
	}
	return string(out), nil
}
