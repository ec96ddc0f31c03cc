// Package genemodel provides the gene reference data used for peak annotation.
package genemodel

// Gene represents a gene record in 0-based half-open coordinates.
type Gene struct {
	ID     string // Gene identifier (e.g., ENSG00000133703)
	Name   string // Gene symbol (e.g., KRAS)
	Chrom  string // Chromosome
	Start  int64  // 0-based start
	End    int64  // 0-based half-open end
	Strand int8   // +1 (forward) or -1 (reverse)
	TSS    int64  // 0-based transcription start site, derived at construction
}

// NewGene builds a Gene, deriving the TSS from the strand: the start
// coordinate on the forward strand, the last covered base (End-1) on the
// reverse strand. The TSS is immutable afterwards.
func NewGene(id, name, chrom string, start, end int64, strand int8) *Gene {
	tss := start
	if strand == -1 {
		tss = end - 1
	}
	return &Gene{
		ID:     id,
		Name:   name,
		Chrom:  chrom,
		Start:  start,
		End:    end,
		Strand: strand,
		TSS:    tss,
	}
}

// IsForwardStrand returns true if the gene is on the forward strand.
func (g *Gene) IsForwardStrand() bool {
	return g.Strand == 1
}

// IsReverseStrand returns true if the gene is on the reverse strand.
func (g *Gene) IsReverseStrand() bool {
	return g.Strand == -1
}

// ParseStrand converts a strand string to its int8 form.
func ParseStrand(s string) int8 {
	if s == "-" {
		return -1
	}
	return 1
}

// FormatStrand converts an int8 strand back to "+" or "-".
func FormatStrand(strand int8) string {
	if strand == -1 {
		return "-"
	}
	return "+"
}
