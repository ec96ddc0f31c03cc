package genemodel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// GTFLoader loads gene records from GTF annotation files.
type GTFLoader struct {
	path string
}

// NewGTFLoader creates a new GTF loader.
func NewGTFLoader(path string) *GTFLoader {
	return &GTFLoader{path: path}
}

// Load loads all genes from the GTF file into the model.
func (l *GTFLoader) Load(m *Model) error {
	return l.loadGTF(m, "")
}

// LoadChromosome loads genes for a specific chromosome.
func (l *GTFLoader) LoadChromosome(m *Model, chrom string) error {
	return l.loadGTF(m, chrom)
}

func (l *GTFLoader) loadGTF(m *Model, filterChrom string) error {
	f, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("open GTF file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(l.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	genes, err := l.parseGTF(reader, filterChrom)
	if err != nil {
		return err
	}

	for _, g := range genes {
		m.AddGene(g)
	}

	return nil
}

// parseGTF parses GTF content and returns gene records. Only rows with
// feature type "gene" are used; transcripts, exons and the rest are skipped.
// GTF coordinates are 1-based closed and are converted to 0-based half-open
// (start-1, end). Malformed lines are skipped rather than failing the load.
func (l *GTFLoader) parseGTF(reader io.Reader, filterChrom string) ([]*Gene, error) {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var genes []*Gene

	for scanner.Scan() {
		line := scanner.Text()

		// Skip comments and empty lines
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 9 {
			continue
		}
		if fields[2] != "gene" {
			continue
		}
		if filterChrom != "" && fields[0] != filterChrom {
			continue
		}

		start1, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			continue
		}
		end1, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			continue
		}

		// 1-based closed -> 0-based half-open
		start := start1 - 1
		end := end1

		attrs := parseAttributes(fields[8])
		geneID := attrs["gene_id"]
		geneName := attrs["gene_name"]
		if geneName == "" {
			geneName = geneID
		}

		genes = append(genes, NewGene(geneID, geneName, fields[0], start, end, ParseStrand(fields[6])))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan GTF: %w", err)
	}

	return genes, nil
}

// parseAttributes parses the GTF attribute column.
// Format: key "value"; key "value"; ...
func parseAttributes(attrStr string) map[string]string {
	attrs := make(map[string]string)

	parts := strings.Split(attrStr, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Find the first space to separate key from value
		idx := strings.Index(part, " ")
		if idx == -1 {
			continue
		}

		key := part[:idx]
		value := strings.TrimSpace(part[idx+1:])
		value = strings.Trim(value, "\"")

		attrs[key] = value
	}

	return attrs
}
