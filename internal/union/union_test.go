package union

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-peaks/internal/interval"
)

func demoSamples() map[string][]interval.GenomicInterval {
	return map[string][]interval.GenomicInterval{
		"sampleA": {
			{Chrom: "chr1", Start: 100, End: 180},
			{Chrom: "chr1", Start: 300, End: 330},
			{Chrom: "chr2", Start: 50, End: 90},
		},
		"sampleB": {
			{Chrom: "chr1", Start: 150, End: 220},
			{Chrom: "chr1", Start: 320, End: 350},
			{Chrom: "chr2", Start: 80, End: 120},
		},
		"sampleC": {
			{Chrom: "chr1", Start: 210, End: 260},
			{Chrom: "chr2", Start: 10, End: 40},
		},
	}
}

func TestPeaks(t *testing.T) {
	union := Peaks(demoSamples())

	assert.Equal(t, []interval.GenomicInterval{
		{Chrom: "chr1", Start: 100, End: 260},
		{Chrom: "chr1", Start: 300, End: 350},
		{Chrom: "chr2", Start: 10, End: 40},
		{Chrom: "chr2", Start: 50, End: 120},
	}, union)
}

func TestPeaks_Empty(t *testing.T) {
	assert.Empty(t, Peaks(nil))
	assert.Empty(t, Peaks(map[string][]interval.GenomicInterval{"s": nil}))
}

func TestPeaks_TouchingPeaksAreJoined(t *testing.T) {
	union := Peaks(map[string][]interval.GenomicInterval{
		"a": {{Chrom: "chr1", Start: 100, End: 200}},
		"b": {{Chrom: "chr1", Start: 200, End: 300}},
	})

	assert.Equal(t, []interval.GenomicInterval{
		{Chrom: "chr1", Start: 100, End: 300},
	}, union)
}

func TestPeaksWithMembership(t *testing.T) {
	union, membership := PeaksWithMembership(demoSamples())
	require.Len(t, membership, len(union))

	expected := map[interval.GenomicInterval][]string{
		{Chrom: "chr1", Start: 100, End: 260}: {"sampleA", "sampleB", "sampleC"},
		{Chrom: "chr1", Start: 300, End: 350}: {"sampleA", "sampleB"},
		{Chrom: "chr2", Start: 10, End: 40}:   {"sampleC"},
		{Chrom: "chr2", Start: 50, End: 120}:  {"sampleA", "sampleB"},
	}

	for peak, want := range expected {
		assert.Equal(t, want, membership[peak], "membership for %v", peak)
	}
}

func TestPeaksWithMembership_Exact(t *testing.T) {
	// A sample is a member iff one of its peaks strictly overlaps the union
	// peak; contributing to a different union peak on the same chromosome is
	// not enough.
	union, membership := PeaksWithMembership(map[string][]interval.GenomicInterval{
		"near": {{Chrom: "chr1", Start: 100, End: 110}},
		"far":  {{Chrom: "chr1", Start: 500, End: 510}},
	})

	require.Len(t, union, 2)
	assert.Equal(t, []string{"near"}, membership[union[0]])
	assert.Equal(t, []string{"far"}, membership[union[1]])
}

func TestPeaksWithMembership_Deduplicated(t *testing.T) {
	// Two peaks of the same sample inside one union peak count once.
	union, membership := PeaksWithMembership(map[string][]interval.GenomicInterval{
		"a": {
			{Chrom: "chr1", Start: 100, End: 150},
			{Chrom: "chr1", Start: 140, End: 200},
		},
	})

	require.Len(t, union, 1)
	assert.Equal(t, []string{"a"}, membership[union[0]])
}

func TestPeaksWithMembership_SortedSamples(t *testing.T) {
	union, membership := PeaksWithMembership(map[string][]interval.GenomicInterval{
		"zeta":  {{Chrom: "chr1", Start: 100, End: 200}},
		"alpha": {{Chrom: "chr1", Start: 150, End: 250}},
		"mid":   {{Chrom: "chr1", Start: 120, End: 220}},
	})

	require.Len(t, union, 1)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, membership[union[0]])
}
