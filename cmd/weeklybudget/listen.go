package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"weeklybudget/internal/amqp"
	"weeklybudget/internal/cli"
	"weeklybudget/internal/core"
)

func listenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Print week archived notifications as they arrive",
		Long: `listen consumes the AMQP queue the ledger publishes to whenever a week is
archived. It needs AMQP_URL and runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.AMQPURL == "" {
				return errors.New("AMQP_URL is not set")
			}

			client, err := amqp.NewClient(a.cfg.AMQPURL, a.cfg.AMQPExchange, a.cfg.AMQPQueue, a.logger)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := cli.ShutdownContext(cmd.Context(), a.logger)
			defer cancel()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.InfoStyle.Render(fmt.Sprintf("Listening on %s, press Ctrl+C to stop", a.cfg.AMQPQueue)))

			err = client.ConsumeWeekArchived(ctx, func(msg *amqp.WeekArchivedMessage) error {
				_, err := fmt.Fprintf(out, "%s  %s  total %s  (%d expenses, %d income)\n",
					cli.SubtleStyle.Render(msg.Timestamp.In(a.ledger.Location()).Format("2006-01-02 15:04")),
					cli.BoldStyle.Render(core.FormatWeekRange(msg.WeekStart.In(a.ledger.Location()))),
					cli.FormatSignedMoney(msg.Total),
					msg.ExpenseCount, msg.IncomeCount)
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
