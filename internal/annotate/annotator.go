package annotate

import (
	"go.uber.org/zap"

	"github.com/inodb/vibe-peaks/internal/genemodel"
	"github.com/inodb/vibe-peaks/internal/interval"
)

// Default promoter window around the TSS, in bp.
const (
	DefaultPromoterUpstream   = 2000
	DefaultPromoterDownstream = 200
)

// Annotator classifies peaks as promoter, gene body or intergenic against a
// gene model. The model is read-only for the lifetime of the annotator.
type Annotator struct {
	model      *genemodel.Model
	upstream   int64
	downstream int64
	workers    int
	logger     *zap.Logger
}

// NewAnnotator creates a new annotator with the given gene model and the
// default promoter window.
func NewAnnotator(m *genemodel.Model) *Annotator {
	return &Annotator{
		model:      m,
		upstream:   DefaultPromoterUpstream,
		downstream: DefaultPromoterDownstream,
		logger:     zap.NewNop(),
	}
}

// SetPromoterWindow configures the promoter window (bp upstream and
// downstream of the TSS, relative to transcription direction).
func (a *Annotator) SetPromoterWindow(upstream, downstream int64) {
	a.upstream = upstream
	a.downstream = downstream
}

// SetWorkers caps the number of chromosomes annotated concurrently.
// Zero or negative means one worker per CPU.
func (a *Annotator) SetWorkers(n int) {
	a.workers = n
}

// SetLogger sets the logger for debug and progress messages.
func (a *Annotator) SetLogger(l *zap.Logger) {
	a.logger = l
}

// AnnotatePeaks produces one Record per input peak, in input order.
//
// Classification per peak, in strict priority: promoter when the peak
// strictly overlaps at least one promoter window, else gene_body when it
// strictly overlaps a gene span, else intergenic with a nearest-TSS
// fallback. Within promoter or gene_body, the assigned gene is the
// candidate whose TSS is closest to the peak center. A peak on a chromosome
// with no genes is intergenic with an empty gene name and zero distance.
func (a *Annotator) AnnotatePeaks(peaks []interval.GenomicInterval) []Record {
	genes := a.model.Genes()

	promoters := groupFeatures(BuildPromoters(genes, a.upstream, a.downstream))
	bodies := groupFeatures(GeneBodies(genes))
	tss := genemodel.BuildTSSIndex(a.model)

	records := make([]Record, len(peaks))
	peaksByChrom := interval.PartitionByChrom(peaks)

	a.forEachChrom(interval.Chromosomes(peaksByChrom), func(chrom string) {
		a.annotateChrom(chrom, peaks, peaksByChrom[chrom], promoters[chrom], bodies[chrom], tss, records)
	})

	a.logger.Debug("annotated peaks",
		zap.Int("peaks", len(peaks)),
		zap.Int("genes", len(genes)),
		zap.Int("chromosomes", len(peaksByChrom)))

	return records
}

// annotateChrom fills in the records for one chromosome's peaks. Each
// chromosome owns a disjoint set of record indices, so chromosomes can be
// processed concurrently without locking.
func (a *Annotator) annotateChrom(
	chrom string,
	peaks []interval.GenomicInterval,
	sorted []interval.Indexed,
	promoters, bodies []Feature,
	tss *genemodel.TSSIndex,
	records []Record,
) {
	promHits := make(map[int][]Feature)
	overlapFeatures(sorted, promoters, promHits)

	bodyHits := make(map[int][]Feature)
	overlapFeatures(sorted, bodies, bodyHits)

	for _, p := range sorted {
		peak := peaks[p.Index]
		center := peak.Center()

		category := CategoryIntergenic
		var gene string
		var dist int64

		if cand := promHits[p.Index]; len(cand) > 0 {
			category = CategoryPromoter
			gene, dist = bestByTSSDistance(center, cand)
		} else if cand := bodyHits[p.Index]; len(cand) > 0 {
			category = CategoryGeneBody
			gene, dist = bestByTSSDistance(center, cand)
		} else {
			gene, dist = tss.Nearest(chrom, center)
		}

		records[p.Index] = Record{
			PeakID:        FormatPeakID(p.Index),
			Chrom:         peak.Chrom,
			Start:         peak.Start,
			End:           peak.End,
			Annotation:    category,
			Gene:          gene,
			DistanceToTSS: dist,
		}
	}
}
