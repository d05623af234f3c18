package huffman

type Entry struct {
	Symbol rune
	Freq   int
}

// FrequencyTable counts symbol occurrences and remembers the order in
// which each symbol was first seen.
type FrequencyTable struct {
	counts map[rune]int
	order  []rune
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		counts: map[rune]int{},
	}
}

// Count tallies the runes of input. Each invalid UTF-8 byte counts as
// utf8.RuneError, so callers that need distinct bytes must validate first.
func Count(input string) *FrequencyTable {
	freq := NewFrequencyTable()
	for _, r := range input {
		freq.Add(r)
	}
	return freq
}

func (f *FrequencyTable) Add(r rune) {
	if _, ok := f.counts[r]; !ok {
		f.order = append(f.order, r)
	}
	f.counts[r]++
}

func (f *FrequencyTable) Len() int {
	return len(f.order)
}

func (f *FrequencyTable) Count(r rune) int {
	return f.counts[r]
}

// Symbols returns the distinct symbols in first-seen order.
func (f *FrequencyTable) Symbols() []rune {
	out := make([]rune, len(f.order))
	copy(out, f.order)
	return out
}

func (f *FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, len(f.order))
	for _, r := range f.order {
		entries = append(entries, Entry{Symbol: r, Freq: f.counts[r]})
	}
	return entries
}

func (f *FrequencyTable) Total() int {
	total := 0
	for _, n := range f.counts {
		total += n
	}
	return total
}
