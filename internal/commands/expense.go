package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/penny-dev/penny/internal/model"
)

func newExpenseCommand(d *deps) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}
	expenseCmd.AddCommand(newExpenseAddCommand(d))
	return expenseCmd
}

func newExpenseAddCommand(d *deps) *cobra.Command {
	var description string
	var recurring bool

	cmd := &cobra.Command{
		Use:   "add <amount> <category> <subcategory>",
		Short: "Add expense (category: business, personal)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[0], err)
			}
			category, err := model.ParseExpenseCategory(args[1])
			if err != nil {
				return err
			}

			expense, err := model.NewExpense(amount, category, args[2], description, recurring)
			if err != nil {
				return err
			}

			mgr, _, err := d.manager()
			if err != nil {
				return err
			}
			if err := mgr.AddExpense(expense); err != nil {
				return err
			}

			fmt.Printf("Expense added: %s\n", expense.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "set as recurring expense")

	return cmd
}
