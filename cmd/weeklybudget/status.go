package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"weeklybudget/internal/cli"
	"weeklybudget/internal/core"
)

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current week against the weekly limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !a.ledger.IsOnboarded(ctx) {
				fmt.Fprintln(out, cli.InfoStyle.Render("No weekly limit set yet. Run 'weeklybudget onboard <amount>' to get started."))
				return nil
			}
			return renderCurrentWeek(out, a.ledger.CurrentWeekView(ctx))
		},
	}
}

func onboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "onboard <weekly-limit>",
		Short: "Set the weekly limit for the first time",
		Example: `  weeklybudget onboard 250
  weeklybudget onboard 180,50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if a.ledger.IsOnboarded(ctx) {
				fmt.Fprintf(out, "%s\n", cli.WarningStyle.Render(fmt.Sprintf(
					"Weekly limit already set to %s. Use 'weeklybudget limit set' to change it.",
					cli.FormatMoney(a.ledger.GetWeeklyLimit(ctx)))))
				return nil
			}

			limit, err := core.ParseAmount(args[0])
			if err != nil {
				return err
			}
			if err := a.ledger.SetWeeklyLimit(ctx, limit); err != nil {
				return err
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Weekly limit set to %s", cli.FormatMoney(limit))))
			return nil
		},
	}
}

func limitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit",
		Short: "Show the weekly limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit := a.ledger.GetWeeklyLimit(cmd.Context())
			if limit.Cents <= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render("No weekly limit set"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weekly limit: %s\n", cli.BoldStyle.Render(cli.FormatMoney(limit)))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Change the weekly limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := core.ParseAmount(args[0])
			if err != nil {
				return err
			}
			if err := a.ledger.SetWeeklyLimit(cmd.Context(), limit); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Weekly limit set to %s", cli.FormatMoney(limit))))
			return nil
		},
	})
	return cmd
}
