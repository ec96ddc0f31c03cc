package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{"partial overlap", Interval{100, 180}, Interval{150, 220}, true},
		{"contained", Interval{100, 200}, Interval{120, 130}, true},
		{"identical", Interval{100, 200}, Interval{100, 200}, true},
		{"single base overlap", Interval{100, 151}, Interval{150, 200}, true},
		{"touching does not overlap", Interval{100, 150}, Interval{150, 200}, false},
		{"disjoint", Interval{100, 150}, Interval{160, 200}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.expected, Overlaps(tt.b, tt.a), "Overlaps must be symmetric")
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []Interval
		expected []Interval
	}{
		{
			name:     "overlapping and disjoint",
			input:    []Interval{{100, 180}, {150, 220}, {300, 330}, {320, 350}},
			expected: []Interval{{100, 220}, {300, 350}},
		},
		{
			name:     "touching intervals are merged",
			input:    []Interval{{100, 150}, {150, 200}},
			expected: []Interval{{100, 200}},
		},
		{
			name:     "unsorted input",
			input:    []Interval{{320, 350}, {100, 180}, {300, 330}, {150, 220}},
			expected: []Interval{{100, 220}, {300, 350}},
		},
		{
			name:     "contained interval does not extend the end",
			input:    []Interval{{100, 300}, {120, 130}},
			expected: []Interval{{100, 300}},
		},
		{
			name:     "single interval",
			input:    []Interval{{5, 10}},
			expected: []Interval{{5, 10}},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.input))
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	input := []Interval{{100, 180}, {150, 220}, {300, 330}, {320, 350}, {400, 401}}
	once := Merge(input)
	twice := Merge(once)
	assert.Equal(t, once, twice)
}

func TestMerge_OutputNonOverlapping(t *testing.T) {
	input := []Interval{{0, 10}, {5, 20}, {20, 30}, {50, 60}, {55, 58}, {70, 80}}
	merged := Merge(input)

	for i := 1; i < len(merged); i++ {
		assert.Greater(t, merged[i].Start, merged[i-1].End,
			"merged[%d] must not overlap or touch merged[%d]", i, i-1)
	}
}

func TestMerge_CoversEveryInputBase(t *testing.T) {
	input := []Interval{{3, 9}, {7, 14}, {14, 16}, {30, 42}}
	merged := Merge(input)

	covered := func(pos int64, ivs []Interval) int {
		n := 0
		for _, iv := range ivs {
			if pos >= iv.Start && pos < iv.End {
				n++
			}
		}
		return n
	}

	for pos := int64(0); pos < 50; pos++ {
		if covered(pos, input) > 0 {
			require.Equal(t, 1, covered(pos, merged), "pos %d must be covered exactly once", pos)
		} else {
			require.Equal(t, 0, covered(pos, merged), "pos %d must stay uncovered", pos)
		}
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	input := []Interval{{300, 330}, {100, 180}}
	Merge(input)
	assert.Equal(t, []Interval{{300, 330}, {100, 180}}, input)
}

func TestCenter(t *testing.T) {
	assert.Equal(t, int64(140), Interval{100, 180}.Center())
	assert.Equal(t, int64(100), Interval{100, 101}.Center())
	assert.Equal(t, int64(140), GenomicInterval{"chr1", 100, 180}.Center())
}
