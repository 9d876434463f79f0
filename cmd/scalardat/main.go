package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scalardat/archive"
	"scalardat/config"
	"scalardat/storage"
	"scalardat/table"
)

var (
	cfgPath    string
	comment    string
	equil      int
	archiveDir string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scalardat",
	Short: "Inspect and reduce scalar tables from QMC runs",
	Long: `scalardat reads the plain-text scalar tables written by a quantum
Monte Carlo run (one header line of column names, one row of floats
per sampled block) and reports equilibrated statistics: the mean of
each column with an autocorrelation-corrected error bar.

Computed summaries can be archived on disk so re-reading large
traces is free as long as the file is unchanged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("comment") {
			comment = cfg.Comment
		}
		if !cmd.Flags().Changed("equil") {
			equil = cfg.Equil
		}
		if !cmd.Flags().Changed("archive") {
			archiveDir = cfg.Archive
		}
		if equil < 0 {
			return fmt.Errorf("equilibration cut must not be negative")
		}

		if verbose {
			zapConfig := zap.NewProductionConfig()
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			logger, err = zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		} else {
			logger = zap.NewNop()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to a yaml config file with defaults")
	rootCmd.PersistentFlags().StringVar(&comment, "comment", table.DefaultComment,
		"comment marker; lines starting with it are skipped")
	rootCmd.PersistentFlags().IntVarP(&equil, "equil", "e", 0,
		"number of equilibration rows to drop before reducing")
	rootCmd.PersistentFlags().StringVar(&archiveDir, "archive", "",
		"directory of the persistent summary archive (empty: no persistence)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func parseOptions() table.Options {
	return table.Options{Comment: comment}
}

// openArchive returns the summary store: badger-backed when an
// archive directory is configured, otherwise in-memory only.
func openArchive() (*archive.Archive, error) {
	if archiveDir == "" {
		return archive.New(storage.NewInMemoryBackend(), parseOptions()), nil
	}
	logger.Debug("opening summary archive", zap.String("dir", archiveDir))
	db, err := storage.OpenBadgerDB(archiveDir)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", archiveDir, err)
	}
	return archive.New(storage.NewBadgerBackend(db), parseOptions()), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scalardat: %v\n", err)
		os.Exit(1)
	}
}
