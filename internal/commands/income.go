package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/penny-dev/penny/internal/model"
)

func newIncomeCommand(d *deps) *cobra.Command {
	incomeCmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income",
	}
	incomeCmd.AddCommand(newIncomeAddCommand(d))
	return incomeCmd
}

func newIncomeAddCommand(d *deps) *cobra.Command {
	var description string
	var target bool

	cmd := &cobra.Command{
		Use:   "add <amount> <source> <frequency>",
		Short: "Add income (frequency: daily, weekly, monthly, yearly, one-time)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[0], err)
			}
			frequency, err := model.ParseFrequency(args[2])
			if err != nil {
				return err
			}

			income, err := model.NewIncome(amount, args[1], frequency, description, target)
			if err != nil {
				return err
			}

			mgr, _, err := d.manager()
			if err != nil {
				return err
			}
			if err := mgr.AddIncome(income); err != nil {
				return err
			}

			fmt.Printf("Income added: %s\n", income.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().BoolVar(&target, "target", false, "set as income target")

	return cmd
}
