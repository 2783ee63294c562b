package commands

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var hundred = decimal.NewFromInt(100)

func newReportCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "report <summary|detailed>",
		Short:     "Generate reports",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"summary", "detailed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := d.manager()
			if err != nil {
				return err
			}
			summary := mgr.Summary()

			if args[0] == "detailed" {
				data, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding summary: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println("\nFinancial Summary")
			fmt.Println("========================================")
			fmt.Printf("Income: $%s\n", summary.TotalIncome.StringFixed(2))
			fmt.Printf("Expenses: $%s\n", summary.TotalExpenses.StringFixed(2))
			fmt.Printf("Net Balance: $%s\n", summary.NetBalance.StringFixed(2))
			fmt.Printf("Total Savings: $%s\n", summary.TotalSavings.StringFixed(2))

			if len(summary.IncomeTargets) > 0 {
				fmt.Println("\nIncome Targets:")
				for _, target := range summary.IncomeTargets {
					fmt.Printf("- %s: $%s %s\n", target.Source, target.Amount.StringFixed(2), target.Frequency)
				}
			}
			if len(summary.ExpenseTargets) > 0 {
				fmt.Println("\nRecurring Expenses:")
				for _, expense := range summary.ExpenseTargets {
					fmt.Printf("- %s/%s: $%s\n", expense.Category, expense.Subcategory, expense.Amount.StringFixed(2))
				}
			}
			if len(summary.SavingsGoals) > 0 {
				fmt.Println("\nSavings Goals Progress:")
				for _, goal := range summary.SavingsGoals {
					progress := decimal.Zero
					if !goal.TargetAmount.IsZero() { // imported data may carry a zero target
						progress = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
					}
					fmt.Printf("- %s: %s%% ($%s/$%s)\n", goal.Name, progress.StringFixed(1),
						goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2))
				}
			}
			return nil
		},
	}
	return cmd
}
