// Package pairs holds the letter-pair table and the views served over HTTP.
// Everything here is built once at startup and is read-only afterwards, so
// a *Table, *Index or *Resolver may be shared by any number of goroutines.
package pairs

import (
	"fmt"
	"sort"

	"github.com/iliyamo/letter-pairs/internal/model"
)

// SubTable is the fixed set of pairs whose keys begin with Letter.
type SubTable struct {
	Letter byte
	Pairs  map[string]string
}

// Table is the union of all sub-tables, keyed by the two-letter key.
type Table struct {
	entries map[string]string
}

// Build unions the sub-tables in the given order.  A key present in more
// than one sub-table takes the value of the last one; this is not an error.
func Build(subtables []SubTable) (*Table, error) {
	entries := make(map[string]string)
	for _, st := range subtables {
		for k, v := range st.Pairs {
			if len(k) != 2 || k[0] != st.Letter {
				return nil, fmt.Errorf("%w: %q in sub-table %q", ErrInvalidKey, k, st.Letter)
			}
			entries[k] = v
		}
	}
	return &Table{entries: entries}, nil
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.entries) }

// Get returns the label stored for key.
func (t *Table) Get(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Pairs returns every entry sorted by key.  The slice is newly allocated.
func (t *Table) Pairs() []model.Pair {
	return sortedPairs(t.entries, nil)
}

// Filtered returns the entries whose two characters differ, sorted by key.
func (t *Table) Filtered() []model.Pair {
	return sortedPairs(t.entries, func(k string) bool { return k[0] != k[1] })
}

func sortedPairs(m map[string]string, keep func(string) bool) []model.Pair {
	out := make([]model.Pair, 0, len(m))
	for k, v := range m {
		if keep != nil && !keep(k) {
			continue
		}
		out = append(out, model.Pair{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
