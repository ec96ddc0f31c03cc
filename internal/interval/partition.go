package interval

import "sort"

// Indexed is an interval paired with its position in the original input
// slice. Sorting reorders records, so downstream consumers that need to map
// results back to input order must carry the index explicitly rather than
// rely on slice position after a sort.
type Indexed struct {
	Start int64
	End   int64
	Index int
}

// PartitionByChrom groups intervals by chromosome, sorting each group
// ascending by start while preserving original input indices.
func PartitionByChrom(ivs []GenomicInterval) map[string][]Indexed {
	grouped := make(map[string][]Indexed)
	for i, iv := range ivs {
		grouped[iv.Chrom] = append(grouped[iv.Chrom], Indexed{
			Start: iv.Start,
			End:   iv.End,
			Index: i,
		})
	}

	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Start < group[j].Start
		})
	}

	return grouped
}

// Chromosomes returns the keys of a partition in ascending lexicographic
// order.
func Chromosomes[V any](grouped map[string]V) []string {
	chroms := make([]string, 0, len(grouped))
	for chrom := range grouped {
		chroms = append(chroms, chrom)
	}
	sort.Strings(chroms)
	return chroms
}
