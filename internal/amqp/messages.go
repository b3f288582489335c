package amqp

import (
	"encoding/json"
	"time"

	"weeklybudget/internal/core"
)

// WeekArchivedMessage announces that a week was closed and moved to the
// archive. It carries totals only; consumers read the full week from the
// ledger if they need it.
type WeekArchivedMessage struct {
	WeekStart    time.Time  `json:"weekStart"`
	Total        core.Money `json:"total"`
	ExpenseCount int        `json:"expenseCount"`
	IncomeCount  int        `json:"incomeCount"`
	Timestamp    time.Time  `json:"timestamp"`
}

// NewWeekArchivedMessage summarizes week for publishing.
func NewWeekArchivedMessage(week core.WeekRecord) *WeekArchivedMessage {
	return &WeekArchivedMessage{
		WeekStart:    week.WeekStart,
		Total:        week.Total,
		ExpenseCount: len(week.Expenses),
		IncomeCount:  len(week.Income),
		Timestamp:    time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *WeekArchivedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// WeekArchivedMessageFromJSON creates a message from JSON bytes
func WeekArchivedMessageFromJSON(data []byte) (*WeekArchivedMessage, error) {
	var msg WeekArchivedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
