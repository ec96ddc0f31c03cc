package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-peaks/internal/bed"
	"github.com/inodb/vibe-peaks/internal/interval"
	"github.com/inodb/vibe-peaks/internal/output"
	"github.com/inodb/vibe-peaks/internal/union"
)

func newUnionCmd() *cobra.Command {
	var (
		samplesFlag    string
		withMembership bool
		outputPath     string
	)

	cmd := &cobra.Command{
		Use:   "union <a.bed> <b.bed> [more.bed...]",
		Short: "Merge per-sample peak sets into one union peak set",
		Example: `  vibe-peaks union sampleA.bed sampleB.bed sampleC.bed
  vibe-peaks union --membership -o union.tsv *.bed
  vibe-peaks union --samples tumor,normal tumor_peaks.bed normal_peaks.bed`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnion(args, samplesFlag, withMembership, outputPath)
		},
	}

	cmd.Flags().StringVar(&samplesFlag, "samples", "", "Comma-separated sample ids (default: file basenames)")
	cmd.Flags().BoolVar(&withMembership, "membership", false, "Report which samples contributed to each union peak")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runUnion(paths []string, samplesFlag string, withMembership bool, outputPath string) error {
	logger := newLogger()
	defer logger.Sync()

	sampleIDs, err := sampleNames(paths, samplesFlag)
	if err != nil {
		return err
	}

	peaksBySample := make(map[string][]interval.GenomicInterval, len(paths))
	for i, path := range paths {
		peaks, err := bed.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read peaks for %s: %w", sampleIDs[i], err)
		}
		peaksBySample[sampleIDs[i]] = peaks
		logger.Debug("loaded sample",
			zap.String("sample", sampleIDs[i]),
			zap.Int("peaks", len(peaks)))
	}

	var unionPeaks []interval.GenomicInterval
	var membership union.Membership
	if withMembership {
		unionPeaks, membership = union.PeaksWithMembership(peaksBySample)
	} else {
		unionPeaks = union.Peaks(peaksBySample)
	}
	logger.Info("built union peaks",
		zap.Int("samples", len(peaksBySample)),
		zap.Int("union_peaks", len(unionPeaks)))

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	writer := output.NewUnionWriter(out, membership)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range unionPeaks {
		if err := writer.Write(p); err != nil {
			return fmt.Errorf("write union peak: %w", err)
		}
	}
	return writer.Flush()
}

// sampleNames resolves sample identifiers: from --samples when given, else
// from the input file basenames with BED extensions stripped.
func sampleNames(paths []string, samplesFlag string) ([]string, error) {
	if samplesFlag == "" {
		ids := make([]string, len(paths))
		for i, path := range paths {
			name := filepath.Base(path)
			name = strings.TrimSuffix(name, ".gz")
			name = strings.TrimSuffix(name, ".bed")
			ids[i] = name
		}
		return ids, nil
	}

	ids := strings.Split(samplesFlag, ",")
	if len(ids) != len(paths) {
		return nil, fmt.Errorf("--samples lists %d ids for %d input files", len(ids), len(paths))
	}
	return ids, nil
}
