package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair_JSONIsTwoElementArray(t *testing.T) {
	b, err := json.Marshal([]Pair{{Key: "ab", Value: "盘"}, {Key: "hh", Value: ""}})
	require.NoError(t, err)
	assert.JSONEq(t, `[["ab","盘"],["hh",""]]`, string(b))

	var back []Pair
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, Pair{Key: "hh"}, back[1])
}
