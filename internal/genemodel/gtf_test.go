package genemodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:  "basic attributes",
			input: `gene_id "ENSG00000133703"; gene_type "protein_coding"; gene_name "KRAS";`,
			expected: map[string]string{
				"gene_id":   "ENSG00000133703",
				"gene_type": "protein_coding",
				"gene_name": "KRAS",
			},
		},
		{
			name:     "missing value is skipped",
			input:    `gene_id "ENSG1"; orphan;`,
			expected: map[string]string{"gene_id": "ENSG1"},
		},
		{
			name:     "empty",
			input:    "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAttributes(tt.input))
		})
	}
}

func TestGTFLoader_ParseGTF(t *testing.T) {
	gtfContent := `##description: Test GTF
chr12	HAVANA	gene	25205246	25250929	.	-	.	gene_id "ENSG00000133703"; gene_type "protein_coding"; gene_name "KRAS";
chr12	HAVANA	transcript	25205246	25250929	.	-	.	gene_id "ENSG00000133703"; transcript_id "ENST00000311936";
chr12	HAVANA	exon	25250751	25250929	.	-	.	gene_id "ENSG00000133703"; exon_number "1";
chr7	HAVANA	gene	55019017	55211628	.	+	.	gene_id "ENSG00000146648"; gene_name "EGFR";
`

	loader := &GTFLoader{}
	genes, err := loader.parseGTF(strings.NewReader(gtfContent), "")
	require.NoError(t, err)

	require.Len(t, genes, 2, "only feature == gene rows are loaded")

	kras := genes[0]
	assert.Equal(t, "KRAS", kras.Name)
	assert.Equal(t, "chr12", kras.Chrom)
	assert.Equal(t, int64(25205245), kras.Start, "1-based closed start converts to 0-based")
	assert.Equal(t, int64(25250929), kras.End, "1-based closed end converts to half-open end")
	assert.Equal(t, int8(-1), kras.Strand)
	assert.Equal(t, int64(25250928), kras.TSS, "reverse strand TSS at End-1")

	egfr := genes[1]
	assert.Equal(t, "EGFR", egfr.Name)
	assert.Equal(t, int64(55019016), egfr.Start)
	assert.Equal(t, int64(55019016), egfr.TSS, "forward strand TSS at start")
}

func TestGTFLoader_GeneNameFallsBackToID(t *testing.T) {
	gtfContent := "chr1\tsrc\tgene\t100\t200\t.\t+\t.\t" + `gene_id "ENSG000001";` + "\n"

	loader := &GTFLoader{}
	genes, err := loader.parseGTF(strings.NewReader(gtfContent), "")
	require.NoError(t, err)
	require.Len(t, genes, 1)

	assert.Equal(t, "ENSG000001", genes[0].Name)
}

func TestGTFLoader_SkipsMalformedLines(t *testing.T) {
	gtfContent := `# comment
chr1	src	gene	not_a_number	200	.	+	.	gene_id "BAD";
too	few	fields
chr1	src	gene	100	200	.	+	.	gene_id "GOOD"; gene_name "OK";
`

	loader := &GTFLoader{}
	genes, err := loader.parseGTF(strings.NewReader(gtfContent), "")
	require.NoError(t, err)

	require.Len(t, genes, 1)
	assert.Equal(t, "OK", genes[0].Name)
}

func TestGTFLoader_FilterChromosome(t *testing.T) {
	gtfContent := `chr12	src	gene	100	200	.	+	.	gene_id "A"; gene_name "ONTWELVE";
chr1	src	gene	100	200	.	+	.	gene_id "B"; gene_name "ONONE";
`

	loader := &GTFLoader{}
	genes, err := loader.parseGTF(strings.NewReader(gtfContent), "chr12")
	require.NoError(t, err)

	require.Len(t, genes, 1)
	assert.Equal(t, "ONTWELVE", genes[0].Name)
}
