package core

import (
	"sort"
	"time"
)

// Summary is the derived view of the open week against the weekly limit.
type Summary struct {
	Limit          Money
	TotalSpent     Money
	TotalIncome    Money
	Remaining      Money   // never negative
	PercentageUsed float64 // 0 when no limit is set
}

// CategoryShare is one slice of a week's category breakdown.
type CategoryShare struct {
	Category          Category
	Amount            Money
	PercentageOfTotal float64
}

// WeekDetail is what a single week's detail view shows.
type WeekDetail struct {
	Week      WeekRecord
	Range     string
	Breakdown []CategoryShare
	Expenses  []Expense // newest first
	Limit     Money
	Remaining Money // Limit - Total, may be negative; meaningful only when Limit > 0
	OverLimit bool
}

func SumExpenses(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func SumIncome(income []Income) Money {
	var total Money
	for _, i := range income {
		total = total.Add(i.Amount)
	}
	return total
}

// NetTotal is spending minus income.
func NetTotal(expenses []Expense, income []Income) Money {
	return SumExpenses(expenses).Sub(SumIncome(income))
}

// NewWeekRecord builds a week with its net total computed.
func NewWeekRecord(weekStart time.Time, expenses []Expense, income []Income, current bool) WeekRecord {
	if expenses == nil {
		expenses = []Expense{}
	}
	if income == nil {
		income = []Income{}
	}
	return WeekRecord{
		WeekStart: weekStart,
		Expenses:  expenses,
		Income:    income,
		Total:     NetTotal(expenses, income),
		IsCurrent: current,
	}
}

// CurrentWeekSummary computes totals for the open week. Income raises the
// remaining budget; spending above the limit clamps Remaining at zero.
func CurrentWeekSummary(expenses []Expense, income []Income, limit Money) Summary {
	s := Summary{
		Limit:       limit,
		TotalSpent:  SumExpenses(expenses),
		TotalIncome: SumIncome(income),
	}
	s.Remaining = limit.Sub(s.TotalSpent).Add(s.TotalIncome)
	if s.Remaining.Cents < 0 {
		s.Remaining = Money{}
	}
	if limit.Cents > 0 {
		s.PercentageUsed = float64(s.TotalSpent.Cents) / float64(limit.Cents) * 100
	}
	return s
}

// CategoryBreakdown sums a week's expenses per category, largest first.
// Percentages are relative to the week's net total and are 0 when the total
// is not positive. Equal amounts keep first-seen order.
func CategoryBreakdown(week WeekRecord) []CategoryShare {
	idx := map[Category]int{}
	var shares []CategoryShare
	for _, e := range week.Expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(shares)
			idx[e.Category] = i
			shares = append(shares, CategoryShare{Category: e.Category})
		}
		shares[i].Amount = shares[i].Amount.Add(e.Amount)
	}

	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].Amount.Cents > shares[b].Amount.Cents
	})

	if week.Total.Cents > 0 {
		for i := range shares {
			shares[i].PercentageOfTotal = float64(shares[i].Amount.Cents) / float64(week.Total.Cents) * 100
		}
	}
	return shares
}

// ExpensesNewestFirst returns a copy of expenses sorted by date descending.
func ExpensesNewestFirst(expenses []Expense) []Expense {
	out := append([]Expense(nil), expenses...)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.After(out[b].Date)
	})
	return out
}

// NewWeekDetail assembles the detail view of a week against limit.
func NewWeekDetail(week WeekRecord, limit Money) WeekDetail {
	remaining := limit.Sub(week.Total)
	return WeekDetail{
		Week:      week,
		Range:     FormatWeekRange(week.WeekStart),
		Breakdown: CategoryBreakdown(week),
		Expenses:  ExpensesNewestFirst(week.Expenses),
		Limit:     limit,
		Remaining: remaining,
		OverLimit: limit.Cents > 0 && remaining.Cents < 0,
	}
}
