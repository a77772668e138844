package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"contractbilling/bill"
	"contractbilling/billing"
	"contractbilling/config"
)

var (
	gstRate    float64
	premium    float64
	jsonOutput bool
)

var processCmd = &cobra.Command{
	Use:   "process <workbook.xlsx>",
	Short: "Process a contract bill workbook and print the computed bill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		res, err := bill.ProcessFile(args[0], opts)
		if err != nil {
			return err
		}

		for _, w := range res.Warnings {
			slog.Warn("processing warning", "detail", w.String())
		}

		if !res.Valid {
			return fmt.Errorf("workbook is not processable: %s", strings.Join(res.Problems, "; "))
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		printSummary(res)
		return nil
	},
}

func buildOptions(cmd *cobra.Command) (bill.Options, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return bill.Options{}, err
		}
		cfg = loaded
	}

	fin := cfg.FinancialOptions()
	if cmd.Flags().Changed("gst") {
		fin.GSTRate = gstRate
	}
	if cmd.Flags().Changed("premium") {
		fin.PremiumPercent = premium
		fin.HasPremium = true
	}
	return bill.Options{Financial: fin}, nil
}

func printSummary(res *bill.Result) {
	fmt.Printf("Run %s (pattern: %s)\n\n", res.RunID, res.Pattern)

	if res.Title.ProjectName != "" {
		fmt.Printf("Project:     %s\n", res.Title.ProjectName)
	}
	if res.Title.ContractorName != "" {
		fmt.Printf("Contractor:  %s\n", res.Title.ContractorName)
	}
	counts := res.Summary()
	fmt.Printf("Items:       %d work order, %d bill quantity, %d extra\n\n",
		counts["work_order"], counts["bill_quantity"], counts["extra_items"])

	t := res.Totals
	fmt.Printf("Bill quantity total:  %s\n", billing.FormatINR(t.BillQuantityTotal))
	fmt.Printf("Extra items total:    %s\n", billing.FormatINR(t.ExtraItemsTotal))
	if t.PremiumAmount != 0 {
		fmt.Printf("Tender premium:       %s\n", billing.FormatINR(t.PremiumAmount))
	}
	fmt.Printf("Grand total:          %s\n", billing.FormatINR(t.GrandTotal))
	fmt.Printf("GST (%.1f%%):          %s\n", t.GSTRate, billing.FormatINR(t.GSTAmount))
	fmt.Printf("Net payable:          %s\n", billing.FormatINR(t.NetPayable))
	fmt.Printf("                      %s\n\n", billing.AmountToWords(t.NetPayable))

	fmt.Println("Note sheet:")
	fmt.Println(res.NoteSheetContent)
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().Float64Var(&gstRate, "gst", billing.DefaultGSTRate, "GST rate percent")
	processCmd.Flags().Float64Var(&premium, "premium", 0, "tender premium percent (negative for a rebate)")
	processCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the full result as JSON")
}
