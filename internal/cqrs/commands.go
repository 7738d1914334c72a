package cqrs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gil10101/sokin-sub000/internal/models"
)

// Update commands use pointer fields: nil means "leave unchanged"
// (partial patch semantics).

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

type RefreshTokenCommand struct {
	Token string
}

type CreateAssetCommand struct {
	UserID       string
	Category     string
	Type         string
	Name         string
	CurrentValue decimal.Decimal
}

type UpdateAssetCommand struct {
	AssetID          string
	RequestingUserID string
	Category         *string
	Type             *string
	Name             *string
	CurrentValue     *decimal.Decimal
}

type DeleteAssetCommand struct {
	AssetID          string
	RequestingUserID string
}

type CreateLiabilityCommand struct {
	UserID         string
	Category       string
	Type           string
	Name           string
	CurrentBalance decimal.Decimal
	OriginalAmount decimal.Decimal
	InterestRate   decimal.Decimal
	MinimumPayment decimal.Decimal
	DueDate        *time.Time
}

type UpdateLiabilityCommand struct {
	LiabilityID      string
	RequestingUserID string
	Category         *string
	Type             *string
	Name             *string
	CurrentBalance   *decimal.Decimal
	InterestRate     *decimal.Decimal
	MinimumPayment   *decimal.Decimal
	DueDate          *time.Time
}

type DeleteLiabilityCommand struct {
	LiabilityID      string
	RequestingUserID string
}

type CreateExpenseCommand struct {
	UserID      string
	Name        string
	Amount      decimal.Decimal
	Category    string
	Date        models.FlexTime
	Description string
}

type UpdateExpenseCommand struct {
	ExpenseID        string
	RequestingUserID string
	Name             *string
	Amount           *decimal.Decimal
	Category         *string
	Date             *models.FlexTime
	Description      *string
}

type DeleteExpenseCommand struct {
	ExpenseID        string
	RequestingUserID string
}

type CreateBudgetCommand struct {
	UserID    string
	Category  string
	Amount    decimal.Decimal
	Period    string
	StartDate time.Time
	EndDate   *time.Time
	Notes     string
}

type UpdateBudgetCommand struct {
	BudgetID         string
	RequestingUserID string
	Category         *string
	Amount           *decimal.Decimal
	Period           *string
	StartDate        *time.Time
	EndDate          *time.Time
	Notes            *string
}

type DeleteBudgetCommand struct {
	BudgetID         string
	RequestingUserID string
}

type CreateBillCommand struct {
	UserID         string
	Name           string
	Amount         decimal.Decimal
	DueDate        time.Time
	Frequency      string
	Category       string
	ReminderDays   []int
	AutoPayEnabled bool
}

type UpdateBillCommand struct {
	BillID           string
	RequestingUserID string
	Name             *string
	Amount           *decimal.Decimal
	DueDate          *time.Time
	Frequency        *string
	Category         *string
	ReminderDays     []int
	AutoPayEnabled   *bool
}

type PayBillCommand struct {
	BillID           string
	RequestingUserID string
	PaidDate         time.Time
}

type DeleteBillCommand struct {
	BillID           string
	RequestingUserID string
}

type CreateSubscriptionCommand struct {
	UserID          string
	Name            string
	Amount          decimal.Decimal
	BillingCycle    string
	NextBillingDate time.Time
	Category        string
}

type UpdateSubscriptionCommand struct {
	SubscriptionID   string
	RequestingUserID string
	Name             *string
	Amount           *decimal.Decimal
	BillingCycle     *string
	NextBillingDate  *time.Time
	Category         *string
	IsActive         *bool
}

type DeleteSubscriptionCommand struct {
	SubscriptionID   string
	RequestingUserID string
}

type CreateSnapshotCommand struct {
	UserID string
}

type MarkNotificationReadCommand struct {
	NotificationID   string
	RequestingUserID string
}

type MarkAllNotificationsReadCommand struct {
	UserID string
}

// ReplaceWatchlistCommand swaps the user's entire symbol list.
type ReplaceWatchlistCommand struct {
	UserID  string
	Symbols []string
}

type ExecuteStockTransactionCommand struct {
	UserID string
	Symbol string
	Type   string
	Shares decimal.Decimal
	Price  decimal.Decimal
}
