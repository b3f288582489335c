package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func weeksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks",
		Short: "List the current week and every archived week, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderWeeks(cmd.OutOrStdout(), a.ledger.AllWeeks(cmd.Context()))
		},
	}
}

func weekCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "week <date>",
		Short: "Show the week containing date (YYYY-MM-DD) with its category breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.ParseInLocation(time.DateOnly, args[0], a.ledger.Location())
			if err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
			}

			detail, ok := a.ledger.WeekDetail(cmd.Context(), day)
			if !ok {
				return fmt.Errorf("no recorded week contains %s", args[0])
			}
			return renderWeekDetail(cmd.OutOrStdout(), detail)
		},
	}
}
