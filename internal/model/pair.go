package model

import "encoding/json"

// Pair is a single mnemonic entry: a two-letter key and the label the
// client shows for it.  Labels may be empty or mix scripts.
//
// Fields:
//  Key   – exactly two characters, first one names the sub-table.
//  Value – display label, stored byte for byte.
type Pair struct {
	Key   string
	Value string
}

// MarshalJSON encodes a pair as a two element array ["ab","盘"], the shape
// the browser client iterates over.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Key, p.Value})
}

// UnmarshalJSON accepts the same two element array produced by MarshalJSON.
func (p *Pair) UnmarshalJSON(b []byte) error {
	var arr [2]string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	p.Key, p.Value = arr[0], arr[1]
	return nil
}
