package ledger

// Persisted key space. Values are plain strings or JSON documents.
const (
	KeyWeeklyLimit   = "weeklyLimit"   // stringified decimal
	KeyExpenses      = "expenses"      // JSON array of core.Expense
	KeyIncome        = "income"        // JSON array of core.Income
	KeyLastReset     = "lastReset"     // timestamp of the last observed week start
	KeyArchivedWeeks = "archivedWeeks" // JSON array of core.WeekRecord
)

// rolloverKeys are held together while a rollover check runs.
var rolloverKeys = []string{KeyLastReset, KeyExpenses, KeyIncome, KeyArchivedWeeks}
