package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchParams(t *testing.T) {
	var opts = NewOptions()
	opts.MaxNodes = 1000
	var params = opts.SearchParams(3)
	assert.Equal(t, 2, params.MaxDepth)
	assert.Equal(t, 5, params.MaxQuiesceDepth)
	assert.Equal(t, int64(1000), params.MaxNodes)
	assert.True(t, params.DeltaPruning)

	opts.QuiescenceFactor = 0
	params = opts.SearchParams(1)
	assert.Equal(t, 0, params.MaxDepth)
	assert.Equal(t, 0, params.MaxQuiesceDepth)
}
