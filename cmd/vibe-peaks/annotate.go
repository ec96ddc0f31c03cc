package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-peaks/internal/annotate"
	"github.com/inodb/vibe-peaks/internal/bed"
	"github.com/inodb/vibe-peaks/internal/genemodel"
	"github.com/inodb/vibe-peaks/internal/output"
)

func newAnnotateCmd() *cobra.Command {
	var (
		gtfPath    string
		cachePath  string
		upstream   int64
		downstream int64
		outputPath string
		workers    int
		chrom      string
	)

	cmd := &cobra.Command{
		Use:   "annotate <peaks.bed>",
		Short: "Annotate peaks as promoter, gene_body or intergenic",
		Example: `  vibe-peaks annotate --gtf gencode.gtf.gz peaks.bed
  vibe-peaks annotate --cache genes.duckdb -o annotated.tsv peaks.bed
  vibe-peaks annotate --gtf genes.gtf --promoter-upstream 1000 peaks.bed
  cat peaks.bed | vibe-peaks annotate --gtf genes.gtf -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gtfPath == "" && cachePath == "" {
				return fmt.Errorf("one of --gtf or --cache is required")
			}
			// Config file values apply unless the flag was given explicitly.
			if !cmd.Flags().Changed("promoter-upstream") {
				upstream = viper.GetInt64("promoter.upstream")
			}
			if !cmd.Flags().Changed("promoter-downstream") {
				downstream = viper.GetInt64("promoter.downstream")
			}
			return runAnnotate(args[0], gtfPath, cachePath, chrom, upstream, downstream, outputPath, workers)
		},
	}

	cmd.Flags().StringVar(&gtfPath, "gtf", "", "Gene annotation GTF (rows with feature 'gene')")
	cmd.Flags().StringVar(&cachePath, "cache", "", "Pre-converted DuckDB gene cache (see 'vibe-peaks convert')")
	cmd.Flags().Int64Var(&upstream, "promoter-upstream", annotate.DefaultPromoterUpstream, "Promoter upstream window (bp)")
	cmd.Flags().Int64Var(&downstream, "promoter-downstream", annotate.DefaultPromoterDownstream, "Promoter downstream window (bp)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output TSV file (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Max chromosomes annotated concurrently (0 = NumCPU)")
	cmd.Flags().StringVar(&chrom, "chrom", "", "Only load genes for this chromosome")

	return cmd
}

func runAnnotate(peaksPath, gtfPath, cachePath, chrom string, upstream, downstream int64, outputPath string, workers int) error {
	logger := newLogger()
	defer logger.Sync()

	peaks, err := bed.ReadFile(peaksPath)
	if err != nil {
		return fmt.Errorf("read peaks: %w", err)
	}
	logger.Info("loaded peaks", zap.Int("count", len(peaks)), zap.String("path", peaksPath))

	model, err := loadModel(gtfPath, cachePath, chrom)
	if err != nil {
		return err
	}
	logger.Info("loaded gene model",
		zap.Int("genes", model.GeneCount()),
		zap.Int("chromosomes", len(model.Chromosomes())))

	ann := annotate.NewAnnotator(model)
	ann.SetPromoterWindow(upstream, downstream)
	ann.SetWorkers(workers)
	ann.SetLogger(logger)

	records := ann.AnnotatePeaks(peaks)

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	writer := output.NewTSVWriter(out)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := writer.Write(&records[i]); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return writer.Flush()
}

// loadModel loads genes from a DuckDB cache when given, else from a GTF.
// A --gtf path with a DuckDB extension is routed to the cache loader, so a
// pre-converted cache works through either flag.
func loadModel(gtfPath, cachePath, chrom string) (*genemodel.Model, error) {
	if cachePath == "" && genemodel.IsDuckDB(gtfPath) {
		cachePath = gtfPath
	}

	model := genemodel.New()

	if cachePath != "" {
		store, err := genemodel.OpenDuckDB(cachePath)
		if err != nil {
			return nil, fmt.Errorf("open gene cache: %w", err)
		}
		defer store.Close()

		if chrom != "" {
			err = store.LoadChromosome(model, chrom)
		} else {
			err = store.Load(model)
		}
		if err != nil {
			return nil, fmt.Errorf("load gene cache: %w", err)
		}
		return model, nil
	}

	loader := genemodel.NewGTFLoader(gtfPath)
	var err error
	if chrom != "" {
		err = loader.LoadChromosome(model, chrom)
	} else {
		err = loader.Load(model)
	}
	if err != nil {
		return nil, fmt.Errorf("load GTF: %w", err)
	}
	return model, nil
}
