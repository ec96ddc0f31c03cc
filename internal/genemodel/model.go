package genemodel

import "sort"

// Model holds a gene set indexed by chromosome. It is populated once by a
// loader and read-only afterwards, so concurrent annotation sweeps can share
// it without locking.
type Model struct {
	// genes stores gene records indexed by chromosome
	genes map[string][]*Gene
}

// New creates a new empty gene model.
func New() *Model {
	return &Model{
		genes: make(map[string][]*Gene),
	}
}

// AddGene adds a gene to the model.
func (m *Model) AddGene(g *Gene) {
	m.genes[g.Chrom] = append(m.genes[g.Chrom], g)
}

// GenesByChrom returns all genes for a chromosome.
func (m *Model) GenesByChrom(chrom string) []*Gene {
	return m.genes[chrom]
}

// Genes returns all genes across chromosomes, ordered by chromosome then by
// insertion order within each chromosome.
func (m *Model) Genes() []*Gene {
	var all []*Gene
	for _, chrom := range m.Chromosomes() {
		all = append(all, m.genes[chrom]...)
	}
	return all
}

// GeneCount returns the total number of genes in the model.
func (m *Model) GeneCount() int {
	count := 0
	for _, genes := range m.genes {
		count += len(genes)
	}
	return count
}

// Chromosomes returns a sorted list of chromosomes in the model.
func (m *Model) Chromosomes() []string {
	chroms := make([]string, 0, len(m.genes))
	for chrom := range m.genes {
		chroms = append(chroms, chrom)
	}
	sort.Strings(chroms)
	return chroms
}
