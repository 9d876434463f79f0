package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scalardat/stats"
)

var statsColumn string

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Print mean and error bar for columns of a scalar file",
	Long: `Reduces a scalar file after dropping the first --equil rows: for
each column the mean, the autocorrelation-corrected error bar, and
the correlation time are printed. With --column only that column is
reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger.Debug("reducing scalar file",
			zap.String("path", path),
			zap.Int("equil", equil))

		a, err := openArchive()
		if err != nil {
			return err
		}
		defer a.Close()

		if statsColumn != "" {
			summary, err := a.Summary(path, statsColumn, equil)
			if err != nil {
				return err
			}
			printSummary(statsColumn, summary)
			return nil
		}

		tableSummary, err := a.TableSummary(path, equil)
		if err != nil {
			return err
		}
		for i, name := range tableSummary.Names {
			printSummary(name, tableSummary.Summaries[i])
		}
		return nil
	},
}

func printSummary(name string, summary *stats.Summary) {
	fmt.Printf("%-24s %16.8f +/- %.8f  (n=%d kappa=%.2f)\n",
		name, summary.Mean, summary.Error, summary.Count, summary.Kappa)
}

func init() {
	statsCmd.Flags().StringVarP(&statsColumn, "column", "c", "",
		"reduce only this column")
	rootCmd.AddCommand(statsCmd)
}
