package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/penny-dev/penny/internal/model"
)

func newSavingsCommand(d *deps) *cobra.Command {
	savingsCmd := &cobra.Command{
		Use:   "savings",
		Short: "Manage savings goals",
	}
	savingsCmd.AddCommand(newSavingsAddCommand(d), newSavingsContributeCommand(d))
	return savingsCmd
}

func newSavingsAddCommand(d *deps) *cobra.Command {
	var deadlineStr string
	var priority int

	cmd := &cobra.Command{
		Use:   "add <name> <target> <category>",
		Short: "Add savings goal (category: short-term, emergency, long-term, electronics, other)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing target amount %q: %w", args[1], err)
			}
			category, err := model.ParseSavingsCategory(args[2])
			if err != nil {
				return err
			}

			var deadline *model.Date
			if deadlineStr != "" {
				day, err := model.ParseDate(deadlineStr)
				if err != nil {
					return err
				}
				deadline = &day
			}

			goal, err := model.NewSavingsGoal(args[0], target, category, deadline, priority)
			if err != nil {
				return err
			}

			mgr, _, err := d.manager()
			if err != nil {
				return err
			}
			if err := mgr.AddGoal(goal); err != nil {
				return err
			}

			fmt.Printf("Savings goal added: %s (id %s)\n", goal.Name, goal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "deadline (YYYY-MM-DD)")
	cmd.Flags().IntVar(&priority, "priority", 3, "priority (1-5)")

	return cmd
}

func newSavingsContributeCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contribute <goal-id> <amount>",
		Short: "Contribute to a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}
			// The ledger trusts callers on this one.
			if amount.Sign() <= 0 {
				return model.ValidationError{Field: "amount", Reason: "must be positive"}
			}

			mgr, _, err := d.manager()
			if err != nil {
				return err
			}
			ok, err := mgr.Contribute(args[0], amount)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no savings goal with id %s", args[0])
			}

			fmt.Printf("Contributed $%s to goal %s\n", amount.StringFixed(2), args[0])
			return nil
		},
	}
	return cmd
}
