package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	ExpenseCreated = "expense.created"
	ExpenseUpdated = "expense.updated"
	ExpenseDeleted = "expense.deleted"

	BudgetCreated = "budget.created"
	BudgetUpdated = "budget.updated"
	BudgetDeleted = "budget.deleted"

	BillCreated = "bill.created"
	BillPaid    = "bill.paid"

	AssetChanged     = "asset.changed"
	LiabilityChanged = "liability.changed"
)

// Stream names
const (
	ExpenseEventsStream   = "expense.events"
	BudgetEventsStream    = "budget.events"
	BillEventsStream      = "bill.events"
	NetWorthEventsStream  = "networth.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Expense events carry enough context for the worker to re-evaluate the
// matching budget without another lookup round-trip.
type ExpenseEvent struct {
	ExpenseID string          `json:"expenseId"`
	UserID    string          `json:"userId"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
}

type BudgetEvent struct {
	BudgetID string          `json:"budgetId"`
	UserID   string          `json:"userId"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   string          `json:"period"`
}

type BillEvent struct {
	BillID  string          `json:"billId"`
	UserID  string          `json:"userId"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"dueDate"`
}

// BalanceSheetEvent signals that a user's assets or liabilities moved,
// so cached net-worth values are stale.
type BalanceSheetEvent struct {
	UserID string `json:"userId"`
}
