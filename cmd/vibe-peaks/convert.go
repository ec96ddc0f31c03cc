package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-peaks/internal/genemodel"
)

func newConvertCmd() *cobra.Command {
	var (
		gtfPath    string
		outputPath string
		chrom      string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a GTF gene annotation to a DuckDB gene cache",
		Long: `Convert parses gene records from a GTF file and stores them in a DuckDB
database so that repeated annotate runs skip GTF parsing.`,
		Example: `  vibe-peaks convert --gtf gencode.gtf.gz --output genes.duckdb
  vibe-peaks convert --gtf genes.gtf -o chr1.duckdb --chrom chr1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if gtfPath == "" {
				return fmt.Errorf("--gtf is required")
			}
			if outputPath == "" {
				return fmt.Errorf("--output is required")
			}
			return runConvert(gtfPath, outputPath, chrom)
		},
	}

	cmd.Flags().StringVar(&gtfPath, "gtf", "", "Input gene annotation GTF")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output DuckDB file path")
	cmd.Flags().StringVar(&chrom, "chrom", "", "Only convert a specific chromosome")

	return cmd
}

func runConvert(gtfPath, outputPath, chrom string) error {
	logger := newLogger()
	defer logger.Sync()

	// Ensure output has a DuckDB extension
	if ext := filepath.Ext(outputPath); ext != ".duckdb" && ext != ".db" {
		outputPath = outputPath + ".duckdb"
	}

	// Remove existing output file if it exists
	if _, err := os.Stat(outputPath); err == nil {
		if err := os.Remove(outputPath); err != nil {
			return fmt.Errorf("remove existing file: %w", err)
		}
	}

	model, err := loadModel(gtfPath, "", chrom)
	if err != nil {
		return err
	}
	logger.Info("loaded genes from GTF",
		zap.Int("genes", model.GeneCount()),
		zap.Int("chromosomes", len(model.Chromosomes())))

	if model.GeneCount() == 0 {
		logger.Warn("no genes loaded, nothing to convert")
		return nil
	}

	store, err := genemodel.OpenDuckDB(outputPath)
	if err != nil {
		return fmt.Errorf("create gene cache: %w", err)
	}
	defer store.Close()

	if err := store.CreateSchema(); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	for _, g := range model.Genes() {
		if err := store.InsertGene(g); err != nil {
			return fmt.Errorf("insert gene %s: %w", g.ID, err)
		}
	}

	count, err := store.GeneCount()
	if err != nil {
		return fmt.Errorf("verify gene count: %w", err)
	}
	logger.Info("conversion complete",
		zap.Int("genes", count),
		zap.String("output", outputPath))

	return nil
}
