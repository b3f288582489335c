package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"weeklybudget/internal/cli"
	"weeklybudget/internal/core"
	"weeklybudget/internal/ledger"
)

const timeLayout = "Mon Jan 2 15:04"

func newTable(out io.Writer, headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	styled := make([]string, len(headers))
	rules := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = cli.HeaderStyle.Render(h)
		rules[i] = strings.Repeat("─", len(h))
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))
	fmt.Fprintln(w, strings.Join(rules, "\t"))
	return w
}

func renderCurrentWeek(out io.Writer, week ledger.CurrentWeek) error {
	s := week.Summary
	box := fmt.Sprintf("%s\n\nLimit      %s\nSpent      %s  (%s)\nIncome     %s\nRemaining  %s",
		cli.FormatTitle(week.Range),
		cli.FormatMoney(s.Limit),
		cli.FormatMoney(s.TotalSpent), cli.FormatUsage(s.PercentageUsed),
		cli.FormatMoney(s.TotalIncome),
		cli.BoldStyle.Render(cli.FormatMoney(s.Remaining)))
	if _, err := fmt.Fprintln(out, cli.BoxStyle.Render(box)); err != nil {
		return err
	}

	if len(week.Expenses) == 0 && len(week.Income) == 0 {
		_, err := fmt.Fprintln(out, cli.SubtleStyle.Render("No transactions this week."))
		return err
	}
	if len(week.Expenses) > 0 {
		if err := renderExpenses(out, core.ExpensesNewestFirst(week.Expenses)); err != nil {
			return err
		}
	}
	if len(week.Income) > 0 {
		fmt.Fprintln(out)
		return renderIncome(out, week.Income)
	}
	return nil
}

func renderExpenses(out io.Writer, expenses []core.Expense) error {
	if len(expenses) == 0 {
		_, err := fmt.Fprintln(out, cli.SubtleStyle.Render("No expenses."))
		return err
	}
	w := newTable(out, "ID", "When", "Category", "Amount", "Description")
	for _, e := range expenses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Date.Format(timeLayout), e.Category, cli.FormatMoney(e.Amount), e.Description)
	}
	return w.Flush()
}

func renderIncome(out io.Writer, income []core.Income) error {
	if len(income) == 0 {
		_, err := fmt.Fprintln(out, cli.SubtleStyle.Render("No income."))
		return err
	}
	w := newTable(out, "ID", "When", "Amount")
	for _, in := range income {
		fmt.Fprintf(w, "%s\t%s\t%s\n", in.ID, in.Date.Format(timeLayout), cli.FormatMoney(in.Amount))
	}
	return w.Flush()
}

func renderWeeks(out io.Writer, weeks []core.WeekRecord) error {
	w := newTable(out, "Week", "Expenses", "Income", "Total", "")
	for _, week := range weeks {
		marker := ""
		if week.IsCurrent {
			marker = cli.InfoStyle.Render("current")
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			core.FormatWeekRange(week.WeekStart), len(week.Expenses), len(week.Income),
			cli.FormatSignedMoney(week.Total), marker)
	}
	return w.Flush()
}

func renderWeekDetail(out io.Writer, d core.WeekDetail) error {
	fmt.Fprintln(out, cli.FormatTitle(d.Range))
	fmt.Fprintf(out, "Total %s", cli.FormatSignedMoney(d.Week.Total))
	if d.Limit.Cents > 0 {
		remaining := cli.FormatSignedMoney(d.Remaining)
		if d.OverLimit {
			remaining += " " + cli.ErrorStyle.Render("over limit")
		}
		fmt.Fprintf(out, " of %s, remaining %s", cli.FormatMoney(d.Limit), remaining)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	if len(d.Breakdown) > 0 {
		w := newTable(out, "Category", "Amount", "Share")
		for _, share := range d.Breakdown {
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", share.Category, cli.FormatMoney(share.Amount), share.PercentageOfTotal)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if err := renderExpenses(out, d.Expenses); err != nil {
		return err
	}
	if len(d.Week.Income) > 0 {
		fmt.Fprintln(out)
		return renderIncome(out, d.Week.Income)
	}
	return nil
}
