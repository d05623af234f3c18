package codec

import "golang.org/x/sync/errgroup"

// CompressAll compresses every input on its own goroutine. Results keep the
// order of inputs; the first error wins.
func CompressAll(inputs []string, opts *Options) ([]*Huffman, error) {
	results := make([]*Huffman, len(inputs))

	var g errgroup.Group
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			h := New(opts)
			results[i] = h
			return h.Compress(input)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
