package engine

import (
	"runtime"

	"github.com/rs/zerolog"
)

type Options struct {
	Threads          int
	MaxNodes         int64
	MaxDepth         int
	QuiescenceFactor int
	DeltaPruning     bool
	Logger           zerolog.Logger
}

func NewOptions() Options {
	return Options{
		Threads:          runtime.NumCPU(),
		MaxNodes:         0,
		MaxDepth:         0,
		QuiescenceFactor: 2,
		DeltaPruning:     true,
		Logger:           zerolog.Nop(),
	}
}

// SearchParams configures the iteration of the given depth.
func (o *Options) SearchParams(depth int) SearchParams {
	var factor = o.QuiescenceFactor
	if factor < 1 {
		factor = 1
	}
	return SearchParams{
		MaxDepth:        depth - 1,
		MaxQuiesceDepth: factor*depth - 1,
		MaxNodes:        o.MaxNodes,
		Threads:         o.Threads,
		DeltaPruning:    o.DeltaPruning,
	}
}
