// Package main provides the vibe-peaks command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-peaks/internal/annotate"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vibe-peaks",
		Short:   "Merge, unify and annotate ATAC/ChIP peak sets",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Long: `vibe-peaks merges peak sets across samples into a unified union peak set
and annotates peaks as promoter, gene_body or intergenic against a gene
model, reporting the nearest TSS and signed distance per peak.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newAnnotateCmd())
	cmd.AddCommand(newUnionCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.vibe-peaks.yaml and seeds defaults.
func initConfig() {
	viper.SetDefault("promoter.upstream", annotate.DefaultPromoterUpstream)
	viper.SetDefault("promoter.downstream", annotate.DefaultPromoterDownstream)

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".vibe-peaks")
		viper.SetConfigType("yaml")
	}

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// newLogger builds the process logger. Debug output goes to stderr only
// with --verbose.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openOutput returns the output writer for -o, defaulting to stdout.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
