package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-peaks/internal/interval"
	"github.com/inodb/vibe-peaks/internal/union"
)

// UnionWriter writes union peaks as BED3 rows, optionally with a fourth
// column listing the contributing samples.
type UnionWriter struct {
	w          *bufio.Writer
	membership union.Membership
}

// NewUnionWriter creates a new union peak writer. A nil membership omits
// the samples column.
func NewUnionWriter(w io.Writer, membership union.Membership) *UnionWriter {
	return &UnionWriter{
		w:          bufio.NewWriter(w),
		membership: membership,
	}
}

// WriteHeader writes the header line.
func (uw *UnionWriter) WriteHeader() error {
	cols := []string{"#chrom", "start", "end"}
	if uw.membership != nil {
		cols = append(cols, "samples")
	}
	_, err := uw.w.WriteString(strings.Join(cols, "\t") + "\n")
	return err
}

// Write writes a single union peak.
func (uw *UnionWriter) Write(peak interval.GenomicInterval) error {
	values := []string{
		peak.Chrom,
		strconv.FormatInt(peak.Start, 10),
		strconv.FormatInt(peak.End, 10),
	}
	if uw.membership != nil {
		values = append(values, strings.Join(uw.membership[peak], ","))
	}

	_, err := uw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (uw *UnionWriter) Flush() error {
	return uw.w.Flush()
}
