package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scalardat/table"
)

var columnsCmd = &cobra.Command{
	Use:   "columns FILE",
	Short: "Print the column names of a scalar file, in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("reading header", zap.String("path", args[0]))
		tbl, err := table.ParseFileWith(args[0], parseOptions())
		if err != nil {
			return err
		}
		for _, name := range tbl.ColumnNames() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
