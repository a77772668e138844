package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"contractbilling/report"
	"contractbilling/workbook"
)

var validateCmd = &cobra.Command{
	Use:   "validate <workbook.xlsx>",
	Short: "Check that a workbook's sheets resolve without processing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wb, err := workbook.Open(args[0])
		if err != nil {
			return err
		}

		collector := &report.Collector{}
		mapping := workbook.ResolveSheets(wb.SheetNames, collector)

		fmt.Printf("Pattern: %s\n", mapping.Pattern)
		for category, sheet := range mapping.Sheets {
			fmt.Printf("  %-20s -> %s\n", category, sheet)
		}
		for _, c := range mapping.Missing {
			fmt.Printf("  %-20s -> (not found)\n", c)
		}
		for _, w := range collector.Warnings() {
			fmt.Printf("  warning: %s\n", w.Message)
		}

		if !mapping.Valid {
			return fmt.Errorf("required sheets missing")
		}
		fmt.Println("Workbook is processable.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
