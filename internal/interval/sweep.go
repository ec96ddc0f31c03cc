package interval

// Pair records that interval A of one list overlaps interval B of another.
// The fields are indices into the respective input slices.
type Pair struct {
	A int
	B int
}

// FindOverlaps returns every (i, j) pair such that a[i] strictly overlaps
// b[j]. Both inputs must already be sorted ascending by start; this is a
// documented precondition, not re-validated here.
//
// The sweep keeps one pointer per list, tests the two heads, and advances
// the pointer whose interval ends first (a on ties). Since both lists are
// sorted by start, an interval whose end is no longer the minimum of the two
// heads can overlap no later element on the other side, so each (i, j) is
// tested at most once. O(len(a) + len(b)).
func FindOverlaps(a, b []Interval) []Pair {
	var pairs []Pair

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if Overlaps(a[i], b[j]) {
			pairs = append(pairs, Pair{A: i, B: j})
		}

		if a[i].End <= b[j].End {
			i++
		} else {
			j++
		}
	}

	return pairs
}

// FindGenomicOverlaps returns every (i, j) pair such that a[i] strictly
// overlaps b[j], comparing only intervals on the same chromosome. Indices
// refer to the original input slices; neither input needs to be pre-sorted.
// Chromosomes are swept in ascending lexicographic order so the result is
// deterministic.
func FindGenomicOverlaps(a, b []GenomicInterval) []Pair {
	groupedA := PartitionByChrom(a)
	groupedB := PartitionByChrom(b)

	var pairs []Pair
	for _, chrom := range Chromosomes(groupedA) {
		listA := groupedA[chrom]
		listB, ok := groupedB[chrom]
		if !ok {
			continue
		}

		i, j := 0, 0
		for i < len(listA) && j < len(listB) {
			ai, bj := listA[i], listB[j]
			if Overlaps(Interval{ai.Start, ai.End}, Interval{bj.Start, bj.End}) {
				pairs = append(pairs, Pair{A: ai.Index, B: bj.Index})
			}

			if ai.End <= bj.End {
				i++
			} else {
				j++
			}
		}
	}

	return pairs
}
