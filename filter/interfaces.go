package filter

import (
	"github.com/s0up4200/holowatch/holodex"
)

// Filter defines the basic interface for video filters.
type Filter interface {
	// Evaluate checks if a video matches the filter criteria.
	Evaluate(video holodex.Video) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation.
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression.
	Expression() string
}

// Compiler compiles filter expressions into executable filters.
type Compiler interface {
	// Compile parses and compiles a filter expression.
	Compile(expression string) (CompiledFilter, error)
}

// Apply returns the videos matching the compiled filter, preserving order.
func Apply(f Filter, videos []holodex.Video) []holodex.Video {
	var matched []holodex.Video
	for _, v := range videos {
		if f.Evaluate(v) {
			matched = append(matched, v)
		}
	}
	return matched
}
