package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scalardat/stats"
)

var avgCmd = &cobra.Command{
	Use:   "avg FILE...",
	Short: "Twist-average reductions of several runs",
	Long: `Reduces each scalar file separately, then combines the per-run
results column by column: the combined mean is the mean of the run
means, and the combined error bar is the quadrature sum of the run
error bars divided by the number of runs. All files must share the
same column schema.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive()
		if err != nil {
			return err
		}
		defer a.Close()

		runs := make([]*stats.TableSummary, len(args))
		for i, path := range args {
			logger.Debug("reducing run", zap.String("path", path))
			runs[i], err = a.TableSummary(path, equil)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}

		combined, err := stats.CombineRuns(runs)
		if err != nil {
			return err
		}
		for _, c := range combined {
			fmt.Printf("%-24s %16.8f +/- %.8f  (%d runs)\n",
				c.Name, c.Mean, c.Error, c.Runs)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(avgCmd)
}
