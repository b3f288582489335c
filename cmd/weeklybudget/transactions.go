package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"weeklybudget/internal/cli"
	"weeklybudget/internal/core"
)

func expenseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expense",
		Aliases: []string{"exp"},
		Short:   "Record, list and delete this week's expenses",
	}

	var category string
	add := &cobra.Command{
		Use:   "add <amount> [description...]",
		Short: "Record an expense",
		Example: `  weeklybudget expense add 12.50 -c food lunch with Sam
  weeklybudget expense add 40,00 --category bills`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseAmount(args[0])
			if err != nil {
				return err
			}
			cat, err := core.ParseCategory(category)
			if err != nil {
				return err
			}

			e, err := a.ledger.AddExpense(cmd.Context(), core.ExpenseDraft{
				Amount:      amount,
				Category:    cat,
				Description: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s %s expense (%s)",
				cli.FormatMoney(e.Amount), e.Category, cli.SubtleStyle.Render(e.ID))))
			return nil
		},
	}
	add.Flags().StringVarP(&category, "category", "c", "", "expense category (see 'weeklybudget categories')")
	_ = add.MarkFlagRequired("category")

	list := &cobra.Command{
		Use:   "list",
		Short: "List this week's expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderExpenses(cmd.OutOrStdout(), core.ExpensesNewestFirst(a.ledger.GetExpenses(cmd.Context())))
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ledger.DeleteExpense(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Expense deleted"))
			return nil
		},
	}

	cmd.AddCommand(add, list, del)
	return cmd
}

func incomeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record, list and delete this week's income",
	}

	add := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record income; it raises what is left of the weekly limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseAmount(args[0])
			if err != nil {
				return err
			}
			in, err := a.ledger.AddIncome(cmd.Context(), amount)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s income (%s)",
				cli.FormatMoney(in.Amount), cli.SubtleStyle.Render(in.ID))))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List this week's income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderIncome(cmd.OutOrStdout(), a.ledger.GetIncome(cmd.Context()))
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete income by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ledger.DeleteIncome(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Income deleted"))
			return nil
		},
	}

	cmd.AddCommand(add, list, del)
	return cmd
}

func categoriesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		Args:  cobra.NoArgs,
		// Needs no store.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range core.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
