package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionByChrom(t *testing.T) {
	ivs := []GenomicInterval{
		{"chr2", 50, 100},
		{"chr1", 300, 330},
		{"chr1", 100, 180},
		{"chr1", 150, 220},
	}

	grouped := PartitionByChrom(ivs)
	require.Len(t, grouped, 2)

	chr1 := grouped["chr1"]
	require.Len(t, chr1, 3)
	assert.Equal(t, []Indexed{
		{Start: 100, End: 180, Index: 2},
		{Start: 150, End: 220, Index: 3},
		{Start: 300, End: 330, Index: 1},
	}, chr1, "sorted by start with original indices preserved")

	assert.Equal(t, []Indexed{{Start: 50, End: 100, Index: 0}}, grouped["chr2"])
}

func TestPartitionByChrom_Empty(t *testing.T) {
	assert.Empty(t, PartitionByChrom(nil))
}

func TestPartitionByChrom_StableOnEqualStarts(t *testing.T) {
	ivs := []GenomicInterval{
		{"chr1", 100, 200},
		{"chr1", 100, 150},
		{"chr1", 100, 180},
	}

	grouped := PartitionByChrom(ivs)
	indices := make([]int, 0, 3)
	for _, iv := range grouped["chr1"] {
		indices = append(indices, iv.Index)
	}
	assert.Equal(t, []int{0, 1, 2}, indices, "ties keep input order")
}

func TestChromosomes_Sorted(t *testing.T) {
	grouped := map[string][]Indexed{
		"chr2":  nil,
		"chr10": nil,
		"chr1":  nil,
		"chrX":  nil,
	}
	assert.Equal(t, []string{"chr1", "chr10", "chr2", "chrX"}, Chromosomes(grouped))
}
