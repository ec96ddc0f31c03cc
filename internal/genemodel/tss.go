package genemodel

import "sort"

// TSSIndex answers nearest-TSS queries per chromosome using binary search
// over sorted TSS positions. Built once from a Model and never modified, so
// it can be shared read-only across concurrent sweeps.
type TSSIndex struct {
	byChrom map[string]tssColumn
}

// tssColumn holds sorted TSS positions with gene names aligned by index.
type tssColumn struct {
	positions []int64
	names     []string
}

// BuildTSSIndex creates a TSS index covering every gene in the model.
func BuildTSSIndex(m *Model) *TSSIndex {
	idx := &TSSIndex{byChrom: make(map[string]tssColumn)}

	for _, chrom := range m.Chromosomes() {
		genes := m.GenesByChrom(chrom)
		if len(genes) == 0 {
			continue
		}

		entries := make([]*Gene, len(genes))
		copy(entries, genes)
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].TSS < entries[j].TSS
		})

		col := tssColumn{
			positions: make([]int64, len(entries)),
			names:     make([]string, len(entries)),
		}
		for i, g := range entries {
			col.positions[i] = g.TSS
			col.names[i] = g.Name
		}
		idx.byChrom[chrom] = col
	}

	return idx
}

// Nearest returns the gene whose TSS is closest to pos on the given
// chromosome, with the signed distance pos - tss. Binary search locates the
// insertion point k of pos; the TSS at k-1 is compared before the one at k,
// so on an exact distance tie the smaller-coordinate TSS wins. A chromosome
// with no genes yields ("", 0).
func (idx *TSSIndex) Nearest(chrom string, pos int64) (string, int64) {
	col, ok := idx.byChrom[chrom]
	if !ok || len(col.positions) == 0 {
		return "", 0
	}

	k := sort.Search(len(col.positions), func(i int) bool {
		return col.positions[i] >= pos
	})

	bestIdx := -1
	var bestDist, bestSigned int64

	for _, cand := range []int{k - 1, k} {
		if cand < 0 || cand >= len(col.positions) {
			continue
		}
		signed := pos - col.positions[cand]
		dist := signed
		if dist < 0 {
			dist = -dist
		}
		if bestIdx == -1 || dist < bestDist {
			bestIdx = cand
			bestDist = dist
			bestSigned = signed
		}
	}

	if bestIdx == -1 {
		return "", 0
	}
	return col.names[bestIdx], bestSigned
}
