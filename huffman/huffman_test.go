package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyInputs = []string{
	"aabbc",
	"abc",
	"abracadabra",
	"the quick brown fox jumps over the lazy dog",
	"mississippi river",
	"ab",
	"héllo wörld, ünïcode",
	strings.Repeat("x", 40) + strings.Repeat("y", 20) + "zzzzzzzzzz" + "w",
}

func TestCount(t *testing.T) {
	freq := Count("abracadabra")

	assert.Equal(t, []rune{'a', 'b', 'r', 'c', 'd'}, freq.Symbols())
	assert.Equal(t, []Entry{
		{Symbol: 'a', Freq: 5},
		{Symbol: 'b', Freq: 2},
		{Symbol: 'r', Freq: 2},
		{Symbol: 'c', Freq: 1},
		{Symbol: 'd', Freq: 1},
	}, freq.Entries())
	assert.Equal(t, 11, freq.Total())
	assert.Equal(t, 0, freq.Count('z'))
}

func TestCountEmpty(t *testing.T) {
	freq := Count("")
	assert.Equal(t, 0, freq.Len())
	assert.Empty(t, freq.Entries())
	assert.Equal(t, 0, freq.Total())
}

func TestWorkedExample(t *testing.T) {
	freq := Count("aabbc")
	root := Build(freq)
	require.NotNil(t, root)

	assert.Equal(t, 5, root.Freq)
	require.True(t, root.Left.IsLeaf())
	assert.Equal(t, 'b', root.Left.Symbol)

	internal := root.Right
	require.False(t, internal.IsLeaf())
	assert.Equal(t, 3, internal.Freq)
	assert.Equal(t, 'c', internal.Left.Symbol)
	assert.Equal(t, 'a', internal.Right.Symbol)

	codes := AssignCodes(root)
	assert.Equal(t, CodeTable{'b': "0", 'c': "10", 'a': "11"}, codes)
	assert.Equal(t, "11", internal.Right.Code)

	msg, err := Encode("aabbc", codes)
	require.NoError(t, err)
	assert.Equal(t, "11110010", msg)
	assert.Equal(t, 80.0, Percentage(5, len(msg)))
}

func TestTieBreakOnCreationOrder(t *testing.T) {
	tests := []struct {
		input string
		codes CodeTable
	}{
		{input: "abc", codes: CodeTable{'c': "0", 'a': "10", 'b': "11"}},
		{input: "cba", codes: CodeTable{'a': "0", 'c': "10", 'b': "11"}},
		{input: "ab", codes: CodeTable{'a': "0", 'b': "1"}},
		{input: "ba", codes: CodeTable{'b': "0", 'a': "1"}},
		// leaves b and r are created before the internal node cd and pop first
		{input: "abracadabra", codes: CodeTable{'a': "0", 'c': "100", 'd': "101", 'b': "110", 'r': "111"}},
	}

	for _, tt := range tests {
		codes := AssignCodes(Build(Count(tt.input)))
		assert.Equal(t, tt.codes, codes, tt.input)
	}
}

func TestBuildEmpty(t *testing.T) {
	assert.Nil(t, Build(Count("")))
	assert.Nil(t, Build(nil))
	assert.Nil(t, AssignCodes(nil))
}

func TestSingleSymbol(t *testing.T) {
	root := Build(Count("aaaa"))
	require.NotNil(t, root)
	assert.True(t, root.IsLeaf())
	assert.Nil(t, root.Right)
	assert.Equal(t, 'a', root.Symbol)
	assert.Equal(t, 4, root.Freq)

	codes := AssignCodes(root)
	assert.Equal(t, CodeTable{'a': ""}, codes)

	msg, err := Encode("aaaa", codes)
	require.NoError(t, err)
	assert.Equal(t, "", msg)
	assert.Equal(t, 100.0, Percentage(4, len(msg)))
}

func TestDeterministic(t *testing.T) {
	for _, input := range propertyInputs {
		first := Build(Count(input))
		second := Build(Count(input))
		assert.Equal(t, first.String(), second.String(), input)

		firstCodes := AssignCodes(first)
		secondCodes := AssignCodes(second)
		assert.Equal(t, firstCodes, secondCodes, input)

		a, err := Encode(input, firstCodes)
		require.NoError(t, err)
		b, err := Encode(input, secondCodes)
		require.NoError(t, err)
		assert.Equal(t, a, b, input)
	}
}

func TestPrefixFree(t *testing.T) {
	for _, input := range propertyInputs {
		codes := AssignCodes(Build(Count(input)))
		for r1, c1 := range codes {
			assert.NotEmpty(t, c1)
			for r2, c2 := range codes {
				if r1 == r2 {
					continue
				}
				assert.False(t, strings.HasPrefix(c2, c1), "%q: %q is a prefix of %q", input, c1, c2)
			}
		}
	}
}

func TestInternalNodesHaveTwoChildren(t *testing.T) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			assert.Nil(t, n.Right)
			return
		}
		require.NotNil(t, n.Right)
		assert.Equal(t, n.Left.Freq+n.Right.Freq, n.Freq)
		walk(n.Left)
		walk(n.Right)
	}
	for _, input := range propertyInputs {
		walk(Build(Count(input)))
	}
}

func TestFrequencyConservation(t *testing.T) {
	for _, input := range append(propertyInputs, "aaaa", "z") {
		root := Build(Count(input))
		assert.Equal(t, len([]rune(input)), root.Freq, input)
	}
}

func TestLengthAccounting(t *testing.T) {
	for _, input := range propertyInputs {
		freq := Count(input)
		codes := AssignCodes(Build(freq))
		msg, err := Encode(input, codes)
		require.NoError(t, err)

		sum := 0
		for _, r := range input {
			sum += len(codes[r])
		}
		assert.Equal(t, sum, len(msg), input)
		assert.Equal(t, sum, codes.Bits(freq), input)
	}
}

func TestEncodeSymbolNotFound(t *testing.T) {
	codes := AssignCodes(Build(Count("aabbc")))
	_, err := Encode("abcd", codes)
	assert.ErrorIs(t, err, ErrSymbolNotFound)
	assert.Contains(t, err.Error(), "'d'")
}

func TestEncodeInvalidUTF8(t *testing.T) {
	codes := AssignCodes(Build(Count("\xff\xfe")))
	assert.Len(t, codes, 1)

	_, err := Encode("\xff\xfe", codes)
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	codes = AssignCodes(Build(Count("a\uFFFDa")))
	msg, err := Encode("a\uFFFDa", codes)
	require.NoError(t, err)
	assert.Equal(t, "101", msg)
}

func TestLeaves(t *testing.T) {
	root := Build(Count("aabbc"))
	var symbols []rune
	for _, leaf := range root.Leaves() {
		symbols = append(symbols, leaf.Symbol)
	}
	assert.Equal(t, []rune{'b', 'c', 'a'}, symbols)

	var nilNode *Node
	assert.Empty(t, nilNode.Leaves())
}

func TestTreeString(t *testing.T) {
	root := Build(Count("aabbc"))
	want := "[5]─┬─['b' 2]\n" +
		"    └─[3]─┬─['c' 1]\n" +
		"          └─['a' 2]"
	assert.Equal(t, want, root.String())

	assert.Equal(t, "['a' 4]", Build(Count("aaaa")).String())

	var nilNode *Node
	assert.Equal(t, "<nil>", nilNode.String())
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		symbols int
		bits    int
		want    float64
	}{
		{symbols: 5, bits: 8, want: 80},
		{symbols: 4, bits: 0, want: 100},
		{symbols: 1, bits: 16, want: -100},
		{symbols: 2, bits: 16, want: 0},
		{symbols: 0, bits: 0, want: 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Percentage(tt.symbols, tt.bits), 1e-9)
	}
}
