package pairs

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/iliyamo/letter-pairs/internal/model"
)

// Mode selectors accepted by Resolve.
const (
	ModeFull    = "full"
	prefixStart = "start_"
	prefixEnd   = "end_"
)

// ShuffleFunc permutes n elements through swap, with the contract of
// rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Resolver answers mode queries against an Index.
type Resolver struct {
	index   *Index
	shuffle ShuffleFunc
}

// NewResolver returns a Resolver that shuffles with the global math/rand/v2
// source, which is safe for concurrent use.
func NewResolver(ix *Index) *Resolver {
	return &Resolver{index: ix, shuffle: rand.Shuffle}
}

// WithShuffle returns a copy of r that permutes results with fn.
func (r *Resolver) WithShuffle(fn ShuffleFunc) *Resolver {
	return &Resolver{index: r.index, shuffle: fn}
}

// Index exposes the underlying partitions.
func (r *Resolver) Index() *Index { return r.index }

// Resolve returns the pairs selected by mode in random order.
//
//	full       every entry, same-letter pairs included
//	start_<l>  the sub-table for l
//	end_<l>    filtered entries ending in l ("end_z" also holds x and y)
//
// Any other mode yields an empty, non-nil slice.  A start_ or end_ mode
// whose suffix is not a single letter with a bucket yields ErrBucketNotFound.
func (r *Resolver) Resolve(mode string) ([]model.Pair, error) {
	var (
		src []model.Pair
		err error
	)
	switch {
	case mode == ModeFull:
		src = r.index.Full()
	case strings.HasPrefix(mode, prefixStart):
		src, err = r.bucket(strings.TrimPrefix(mode, prefixStart), r.index.Start)
	case strings.HasPrefix(mode, prefixEnd):
		src, err = r.bucket(strings.TrimPrefix(mode, prefixEnd), r.index.End)
	default:
		return []model.Pair{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]model.Pair, len(src))
	copy(out, src)
	r.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}

func (r *Resolver) bucket(suffix string, lookup func(byte) ([]model.Pair, error)) ([]model.Pair, error) {
	if len(suffix) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrBucketNotFound, suffix)
	}
	return lookup(suffix[0])
}

// Load builds the table, index and resolver from the built-in sub-tables.
func Load() (*Resolver, error) {
	subtables := DefaultSubTables()
	t, err := Build(subtables)
	if err != nil {
		return nil, err
	}
	return NewResolver(NewIndex(t, subtables)), nil
}
