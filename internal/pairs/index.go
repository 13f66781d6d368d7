package pairs

import (
	"fmt"
	"sort"

	"github.com/iliyamo/letter-pairs/internal/model"
)

// combinedEnd is the end bucket that also collects keys ending in x and y.
const combinedEnd = 'z'

// Index holds the partitioned views of a Table.
//
// By-start buckets are the original sub-tables and keep same-letter pairs
// such as "hh".  By-end buckets are cut from the filtered table and do not.
// Clients depend on this difference, so it is kept as is.
type Index struct {
	full    []model.Pair
	byStart map[byte][]model.Pair
	byEnd   map[byte][]model.Pair
}

// NewIndex derives the start and end partitions.  subtables must be the
// same slice the table was built from.
func NewIndex(t *Table, subtables []SubTable) *Index {
	ix := &Index{
		full:    t.Pairs(),
		byStart: make(map[byte][]model.Pair, len(subtables)),
		byEnd:   make(map[byte][]model.Pair, combinedEnd-'a'),
	}

	merged := make(map[byte]map[string]string, len(subtables))
	for _, st := range subtables {
		m, ok := merged[st.Letter]
		if !ok {
			m = make(map[string]string, len(st.Pairs))
			merged[st.Letter] = m
		}
		for k, v := range st.Pairs {
			m[k] = v
		}
	}
	for letter, m := range merged {
		ix.byStart[letter] = sortedPairs(m, nil)
	}

	for c := byte('a'); c <= 'w'; c++ {
		ix.byEnd[c] = []model.Pair{}
	}
	ix.byEnd[combinedEnd] = []model.Pair{}
	for _, p := range t.Filtered() {
		end := p.Key[1]
		switch {
		case end >= 'x' && end <= 'z':
			end = combinedEnd
		case end < 'a' || end > 'w':
			continue
		}
		ix.byEnd[end] = append(ix.byEnd[end], p)
	}
	return ix
}

// Full returns the unfiltered table, same-letter pairs included.
func (ix *Index) Full() []model.Pair { return ix.full }

// Start returns the by-start bucket for letter.
func (ix *Index) Start(letter byte) ([]model.Pair, error) {
	b, ok := ix.byStart[letter]
	if !ok {
		return nil, fmt.Errorf("%w: start_%c", ErrBucketNotFound, letter)
	}
	return b, nil
}

// End returns the by-end bucket for letter.  Only 'z' holds x and y keys;
// asking for 'x' or 'y' directly fails.
func (ix *Index) End(letter byte) ([]model.Pair, error) {
	b, ok := ix.byEnd[letter]
	if !ok {
		return nil, fmt.Errorf("%w: end_%c", ErrBucketNotFound, letter)
	}
	return b, nil
}

// Modes lists every mode string that resolves to a bucket, in a stable order:
// "full", then start_ modes, then end_ modes, each alphabetical.
func (ix *Index) Modes() []string {
	modes := []string{ModeFull}
	modes = append(modes, letterModes(prefixStart, ix.byStart)...)
	modes = append(modes, letterModes(prefixEnd, ix.byEnd)...)
	return modes
}

func letterModes(prefix string, m map[byte][]model.Pair) []string {
	letters := make([]byte, 0, len(m))
	for l := range m {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = prefix + string(l)
	}
	return out
}
