package annotate

import (
	"sort"

	"github.com/inodb/vibe-peaks/internal/genemodel"
	"github.com/inodb/vibe-peaks/internal/interval"
)

// Feature is an annotatable region derived from a gene: a promoter window
// or the gene body itself. Features live only for the duration of the
// annotation call that built them.
type Feature struct {
	Chrom string
	Start int64
	End   int64
	Gene  string
	TSS   int64
}

// BuildPromoters derives promoter windows for all genes. The window is
// asymmetric relative to transcription direction: on the forward strand it
// spans [tss-upstream, tss+downstream), on the reverse strand the arms are
// swapped because upstream points toward higher coordinates there. Windows
// are clamped at zero and discarded when empty after clamping.
func BuildPromoters(genes []*genemodel.Gene, upstream, downstream int64) []Feature {
	var feats []Feature
	for _, g := range genes {
		var pStart, pEnd int64
		if g.IsForwardStrand() {
			pStart = max(0, g.TSS-upstream)
			pEnd = g.TSS + downstream
		} else {
			pStart = max(0, g.TSS-downstream)
			pEnd = g.TSS + upstream
		}
		if pEnd <= pStart {
			continue
		}
		feats = append(feats, Feature{
			Chrom: g.Chrom,
			Start: pStart,
			End:   pEnd,
			Gene:  g.Name,
			TSS:   g.TSS,
		})
	}
	return feats
}

// GeneBodies reinterprets each gene's full span as a Feature.
func GeneBodies(genes []*genemodel.Gene) []Feature {
	feats := make([]Feature, 0, len(genes))
	for _, g := range genes {
		feats = append(feats, Feature{
			Chrom: g.Chrom,
			Start: g.Start,
			End:   g.End,
			Gene:  g.Name,
			TSS:   g.TSS,
		})
	}
	return feats
}

// groupFeatures partitions features by chromosome, sorted by start.
func groupFeatures(feats []Feature) map[string][]Feature {
	grouped := make(map[string][]Feature)
	for _, f := range feats {
		grouped[f.Chrom] = append(grouped[f.Chrom], f)
	}
	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Start < group[j].Start
		})
	}
	return grouped
}

// overlapFeatures collects, per original peak index, every feature strictly
// overlapping that peak. Peaks must be sorted by start within the
// chromosome; features likewise. A shared pointer advances past features
// that end at or before the current peak's start and never rewinds, then a
// forward scan collects features starting before the peak's end.
func overlapFeatures(peaks []interval.Indexed, feats []Feature, hits map[int][]Feature) {
	j := 0
	for _, p := range peaks {
		for j < len(feats) && feats[j].End <= p.Start {
			j++
		}

		for k := j; k < len(feats) && feats[k].Start < p.End; k++ {
			f := feats[k]
			if interval.Overlaps(
				interval.Interval{Start: p.Start, End: p.End},
				interval.Interval{Start: f.Start, End: f.End},
			) {
				hits[p.Index] = append(hits[p.Index], f)
			}
		}
	}
}

// bestByTSSDistance picks the candidate whose TSS is closest (absolute) to
// the peak center, returning the gene name and signed distance
// center - tss. On a distance tie the first candidate encountered wins;
// candidates arrive in chromosome-sorted order and that ordering is part of
// the reproducibility contract.
func bestByTSSDistance(center int64, candidates []Feature) (string, int64) {
	bestGene := ""
	var bestDist, bestSigned int64
	first := true

	for _, c := range candidates {
		signed := center - c.TSS
		dist := signed
		if dist < 0 {
			dist = -dist
		}
		if first || dist < bestDist {
			first = false
			bestDist = dist
			bestSigned = signed
			bestGene = c.Gene
		}
	}

	return bestGene, bestSigned
}
