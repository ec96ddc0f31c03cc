// Package union builds unified non-overlapping peak sets across samples.
//
// Merging per-sample peak lists into one union peak set is the standard
// step before building a peaks-by-samples count matrix: it gives every
// sample a consistent peak index.
package union

import (
	"sort"

	set "gopkg.in/fatih/set.v0"

	"github.com/inodb/vibe-peaks/internal/interval"
)

// Membership maps each union peak to the sorted, deduplicated list of
// sample identifiers whose original peaks strictly overlap it.
type Membership map[interval.GenomicInterval][]string

// Peaks merges the peaks of all samples into a single non-overlapping peak
// set. Per chromosome, peaks that overlap or touch are joined; chromosomes
// appear in the result in ascending lexicographic order. The union covers
// exactly the union of all input coordinates.
func Peaks(peaksBySample map[string][]interval.GenomicInterval) []interval.GenomicInterval {
	byChrom := poolByChrom(peaksBySample)

	var union []interval.GenomicInterval
	for _, chrom := range interval.Chromosomes(byChrom) {
		for _, iv := range interval.Merge(byChrom[chrom]) {
			union = append(union, interval.GenomicInterval{Chrom: chrom, Start: iv.Start, End: iv.End})
		}
	}
	return union
}

// PeaksWithMembership builds the union peak set and additionally records,
// for every union peak, which samples contributed to it. A sample is a
// member of a union peak iff at least one of its original peaks strictly
// overlaps that union peak; a peak that merely touches the union peak does
// not count, even though touching peaks are merged into the union itself.
func PeaksWithMembership(peaksBySample map[string][]interval.GenomicInterval) ([]interval.GenomicInterval, Membership) {
	union := Peaks(peaksBySample)

	unionByChrom := make(map[string][]interval.GenomicInterval)
	for _, u := range union {
		unionByChrom[u.Chrom] = append(unionByChrom[u.Chrom], u)
	}

	contributors := make(map[interval.GenomicInterval]set.Interface, len(union))
	for _, u := range union {
		contributors[u] = set.New(set.NonThreadSafe)
	}

	for sample, peaks := range peaksBySample {
		for chrom, sampleIvs := range groupSample(peaks) {
			unionChr := unionByChrom[chrom]
			if len(unionChr) == 0 {
				continue
			}

			// Two-pointer sweep between the sample's sorted peaks and the
			// chromosome's union peaks, advancing the side that ends first.
			i, j := 0, 0
			for i < len(sampleIvs) && j < len(unionChr) {
				u := unionChr[j]
				if interval.Overlaps(sampleIvs[i], interval.Interval{Start: u.Start, End: u.End}) {
					contributors[u].Add(sample)
				}

				if sampleIvs[i].End <= u.End {
					i++
				} else {
					j++
				}
			}
		}
	}

	membership := make(Membership, len(union))
	for u, s := range contributors {
		samples := make([]string, 0, s.Size())
		for _, item := range s.List() {
			samples = append(samples, item.(string))
		}
		sort.Strings(samples)
		membership[u] = samples
	}

	return union, membership
}

// poolByChrom collects every interval of every sample into per-chromosome
// pools, dropping sample identity.
func poolByChrom(peaksBySample map[string][]interval.GenomicInterval) map[string][]interval.Interval {
	byChrom := make(map[string][]interval.Interval)
	for _, peaks := range peaksBySample {
		for _, p := range peaks {
			byChrom[p.Chrom] = append(byChrom[p.Chrom], interval.Interval{Start: p.Start, End: p.End})
		}
	}
	return byChrom
}

// groupSample partitions one sample's peaks by chromosome, sorted by start.
func groupSample(peaks []interval.GenomicInterval) map[string][]interval.Interval {
	grouped := make(map[string][]interval.Interval)
	for _, p := range peaks {
		grouped[p.Chrom] = append(grouped[p.Chrom], interval.Interval{Start: p.Start, End: p.End})
	}
	for _, ivs := range grouped {
		sort.SliceStable(ivs, func(i, j int) bool {
			return ivs[i].Start < ivs[j].Start
		})
	}
	return grouped
}
