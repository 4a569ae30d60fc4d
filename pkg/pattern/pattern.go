// Package pattern supplies pattern collections (variable subsets) to the
// projection builder (pkg/projection). Pattern-collection mining is an
// external collaborator out of scope for the hard core; this package ships
// one concrete, exhaustive generator sufficient to exercise C3 end to end.
package pattern

import "github.com/dalmcut/dalmcut/pkg/task"

// CollectionGenerator produces the patterns (variable subsets) a factory
// should build projections from.
type CollectionGenerator interface {
	Generate(t task.AbstractTask) ([][]int, error)
}

// systematic generates every non-empty variable subset up to a fixed size,
// mirroring the original's `systematic(pattern_max_size)` default pattern
// collection generator.
type systematic struct {
	maxSize int
}

// Systematic returns a CollectionGenerator producing every non-empty
// variable subset of size at most maxSize, in lexicographic order of the
// sorted variable lists (each subset directly followed by its extensions:
// [0], [0 1], [0 2], [1], ...). maxSize <= 0 defaults to 2, matching
// `systematic(2)` in the original.
func Systematic(maxSize int) CollectionGenerator {
	if maxSize <= 0 {
		maxSize = 2
	}
	return &systematic{maxSize: maxSize}
}

func (s *systematic) Generate(t task.AbstractTask) ([][]int, error) {
	n := t.NumVariables()
	var patterns [][]int
	var choose func(start int, current []int)
	choose = func(start int, current []int) {
		if len(current) > 0 {
			patterns = append(patterns, append([]int(nil), current...))
		}
		if len(current) == s.maxSize {
			return
		}
		for v := start; v < n; v++ {
			choose(v+1, append(current, v))
		}
	}
	choose(0, nil)
	return patterns, nil
}
