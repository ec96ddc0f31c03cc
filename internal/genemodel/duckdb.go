package genemodel

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDBStore persists a parsed gene model in a DuckDB database so repeated
// annotation runs can skip GTF parsing.
type DuckDBStore struct {
	db   *sql.DB
	path string
}

// OpenDuckDB opens a DuckDB-backed gene store, creating the file if needed.
func OpenDuckDB(path string) (*DuckDBStore, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	return &DuckDBStore{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (s *DuckDBStore) Close() error {
	return s.db.Close()
}

// CreateSchema creates the database schema for storing genes.
func (s *DuckDBStore) CreateSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS genes (
			gene_id VARCHAR,
			gene_name VARCHAR,
			chrom VARCHAR,
			start BIGINT,
			end_ BIGINT,
			strand TINYINT,
			tss BIGINT
		);

		CREATE INDEX IF NOT EXISTS idx_genes_pos ON genes(chrom, start, end_);
		CREATE INDEX IF NOT EXISTS idx_genes_name ON genes(gene_name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// InsertGene inserts a gene into the database.
func (s *DuckDBStore) InsertGene(g *Gene) error {
	_, err := s.db.Exec(`
		INSERT INTO genes (gene_id, gene_name, chrom, start, end_, strand, tss)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.Name, g.Chrom, g.Start, g.End, g.Strand, g.TSS)
	if err != nil {
		return fmt.Errorf("insert gene: %w", err)
	}
	return nil
}

// Load loads all genes into the model, ordered by chromosome then start.
func (s *DuckDBStore) Load(m *Model) error {
	return s.load(m, "")
}

// LoadChromosome loads genes for a specific chromosome into the model.
func (s *DuckDBStore) LoadChromosome(m *Model, chrom string) error {
	return s.load(m, chrom)
}

func (s *DuckDBStore) load(m *Model, chrom string) error {
	query := `
		SELECT gene_id, gene_name, chrom, start, end_, strand, tss
		FROM genes
		ORDER BY chrom, start
	`
	args := []interface{}{}
	if chrom != "" {
		query = `
			SELECT gene_id, gene_name, chrom, start, end_, strand, tss
			FROM genes
			WHERE chrom = ?
			ORDER BY start
		`
		args = append(args, chrom)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("query genes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		g := &Gene{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Chrom, &g.Start, &g.End, &g.Strand, &g.TSS); err != nil {
			return fmt.Errorf("scan gene: %w", err)
		}
		m.AddGene(g)
	}
	return rows.Err()
}

// GeneCount returns the total number of genes in the database.
func (s *DuckDBStore) GeneCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM genes").Scan(&count)
	return count, err
}

// Chromosomes returns a sorted list of chromosomes in the database.
func (s *DuckDBStore) Chromosomes() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT chrom FROM genes ORDER BY chrom")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chroms []string
	for rows.Next() {
		var chrom string
		if err := rows.Scan(&chrom); err != nil {
			return nil, err
		}
		chroms = append(chroms, chrom)
	}
	return chroms, rows.Err()
}

// IsDuckDB checks if a path looks like a DuckDB database file.
func IsDuckDB(path string) bool {
	return strings.HasSuffix(path, ".duckdb") || strings.HasSuffix(path, ".db")
}
