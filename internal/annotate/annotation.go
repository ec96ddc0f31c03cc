// Package annotate classifies peaks against a gene model.
package annotate

import "strconv"

// Annotation categories, in decreasing priority. A peak overlapping both a
// promoter window and a gene body is a promoter peak.
const (
	CategoryPromoter   = "promoter"
	CategoryGeneBody   = "gene_body"
	CategoryIntergenic = "intergenic"
)

// Record is the annotation result for one input peak. Exactly one record is
// produced per peak, in input order.
type Record struct {
	PeakID        string // "peak_<input index>"
	Chrom         string
	Start         int64
	End           int64
	Annotation    string // promoter, gene_body or intergenic
	Gene          string // matched gene, or nearest gene for intergenic peaks
	DistanceToTSS int64  // signed: peak center - TSS
}

// FormatPeakID creates the identifier for the peak at the given input index.
func FormatPeakID(index int) string {
	return "peak_" + strconv.Itoa(index)
}

// RecordWriter defines the interface for writing annotation records.
type RecordWriter interface {
	WriteHeader() error
	Write(rec *Record) error
	Flush() error
}
