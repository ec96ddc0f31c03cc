// Package output provides annotation output formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-peaks/internal/annotate"
)

// TSVWriter writes annotation records in tab-delimited format with the
// fixed column order expected by downstream tooling.
type TSVWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTSVWriter creates a new tab-delimited annotation writer.
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"peak_id",
			"chrom",
			"start",
			"end",
			"annotation",
			"gene",
			"distance_to_TSS",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TSVWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single annotation record.
func (tw *TSVWriter) Write(rec *annotate.Record) error {
	values := []string{
		rec.PeakID,
		rec.Chrom,
		strconv.FormatInt(rec.Start, 10),
		strconv.FormatInt(rec.End, 10),
		rec.Annotation,
		rec.Gene,
		strconv.FormatInt(rec.DistanceToTSS, 10),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TSVWriter) Flush() error {
	return tw.w.Flush()
}
