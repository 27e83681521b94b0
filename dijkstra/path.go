package dijkstra

import (
	"fmt"
	"iter"
	"slices"
)

// Backtrack lazily walks the predecessor chain from destination back to
// source, yielding 1-based vertex numbers destination-first.
//
// The sequence is empty for an invalid or unreachable pair and stops early
// if the chain is longer than the table size. Use Path to get the
// source-first order together with errors.
func (t *Table) Backtrack(source, destination int) iter.Seq[int] {
	return func(yield func(int) bool) {
		s, d, err := t.index(source, destination)
		if err != nil || !t.at(s, d).Reachable() {
			return
		}

		cur := d
		for step := 0; step < t.n; step++ {
			if !yield(cur + 1) {
				return
			}
			c := t.at(s, cur)
			if c.Path == BasePath || c.Path == NoPath {
				return
			}
			cur = c.Path - 1
		}
	}
}

// Path returns the shortest path from source to destination as 1-based
// vertex numbers, source first. Path(v, v) is [v].
//
// Errors:
//   - core.ErrInvalidIndex for vertex numbers outside [1, Size()].
//   - ErrNoPath when destination is unreachable.
//   - ErrCorruptTable when the chain does not end at source.
//
// Complexity: O(path length).
func (t *Table) Path(source, destination int) ([]int, error) {
	s, d, err := t.index(source, destination)
	if err != nil {
		return nil, err
	}
	if !t.at(s, d).Reachable() {
		return nil, fmt.Errorf("%w: from %d to %d", ErrNoPath, source, destination)
	}

	out := slices.Collect(t.Backtrack(source, destination))
	if len(out) == 0 || out[len(out)-1] != source {
		return nil, fmt.Errorf("%w: from %d to %d", ErrCorruptTable, source, destination)
	}
	slices.Reverse(out)

	return out, nil
}

// PathSeq is Path as a sequence; it yields nothing when Path would fail.
func (t *Table) PathSeq(source, destination int) iter.Seq[int] {
	return func(yield func(int) bool) {
		p, err := t.Path(source, destination)
		if err != nil {
			return
		}
		for _, v := range p {
			if !yield(v) {
				return
			}
		}
	}
}
