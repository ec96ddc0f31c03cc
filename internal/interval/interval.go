// Package interval provides half-open genomic interval primitives.
package interval

import "sort"

// Interval is a half-open 1D range [Start, End).
// An interval is well-formed when End > Start; callers are expected to
// filter malformed records before handing them to this package.
type Interval struct {
	Start int64
	End   int64
}

// Center returns the midpoint of the interval, rounded down.
func (iv Interval) Center() int64 {
	return (iv.Start + iv.End) / 2
}

// GenomicInterval is an Interval scoped to a chromosome or contig.
// Intervals on different chromosomes never overlap.
type GenomicInterval struct {
	Chrom string
	Start int64
	End   int64
}

// Center returns the midpoint of the interval, rounded down.
func (gi GenomicInterval) Center() int64 {
	return (gi.Start + gi.End) / 2
}

// Overlaps reports whether two half-open intervals share at least one base.
// Touching intervals (a.End == b.Start) do not overlap. This is strictly
// narrower than the Merge predicate, which joins touching intervals; the two
// must not be unified.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Merge collapses overlapping or touching intervals into a minimal
// non-overlapping set, sorted by start. The merge predicate is
// cur.Start <= last.End, so intervals that merely touch are joined even
// though Overlaps would report false for them. Empty input yields nil.
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}

	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]Interval, 0, len(sorted))
	merged = append(merged, sorted[0])

	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			if cur.End > last.End {
				last.End = cur.End
			}
		} else {
			merged = append(merged, cur)
		}
	}

	return merged
}
