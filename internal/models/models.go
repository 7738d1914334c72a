package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset categories.
const (
	AssetBankAccounts       = "bank_accounts"
	AssetInvestmentAccounts = "investment_accounts"
	AssetRealEstate         = "real_estate"
	AssetVehicles           = "vehicles"
	AssetOtherValuables     = "other_valuables"
)

// Liability categories.
const (
	LiabilityCreditCards   = "credit_cards"
	LiabilityMortgages     = "mortgages"
	LiabilityStudentLoans  = "student_loans"
	LiabilityAutoLoans     = "auto_loans"
	LiabilityPersonalLoans = "personal_loans"
	LiabilityOtherDebts    = "other_debts"
)

// Budget periods.
const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
	PeriodWeekly  = "weekly"
	PeriodDaily   = "daily"
	PeriodCustom  = "custom"
)

// Bill frequencies.
const (
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
	FrequencyOneTime   = "one-time"
)

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationBudget  = "budget"
	NotificationSystem  = "system"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Asset struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	Category     string          `json:"category"`
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	LastUpdated  time.Time       `json:"lastUpdated"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type Liability struct {
	ID             string          `json:"id"`
	UserID         string          `json:"-"`
	Category       string          `json:"category"`
	Type           string          `json:"type"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Expense.Date is a FlexTime because transaction dates imported from the
// legacy document store arrive in several shapes (ISO strings, epoch
// millis, timestamp wrapper objects). An unparseable date stays invalid
// and the aggregators exclude the record instead of failing.
type Expense struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        FlexTime        `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Budget struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

type BillReminder struct {
	ID             string          `json:"id"`
	UserID         string          `json:"-"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
	Frequency      string          `json:"frequency"`
	Category       string          `json:"category"`
	IsPaid         bool            `json:"isPaid"`
	PaidDate       *time.Time      `json:"paidDate,omitempty"`
	ReminderDays   []int           `json:"reminderDays"`
	AutoPayEnabled bool            `json:"autoPayEnabled"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type Subscription struct {
	ID              string          `json:"id"`
	UserID          string          `json:"-"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	BillingCycle    string          `json:"billingCycle"`
	NextBillingDate time.Time       `json:"nextBillingDate"`
	Category        string          `json:"category"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NetWorthSnapshot is an append-only point-in-time record. NetWorth is
// always derived as TotalAssets - TotalLiabilities at creation and is
// never independently settable.
type NetWorthSnapshot struct {
	ID                 string                     `json:"id"`
	UserID             string                     `json:"-"`
	Date               time.Time                  `json:"date"`
	NetWorth           decimal.Decimal            `json:"netWorth"`
	TotalAssets        decimal.Decimal            `json:"totalAssets"`
	TotalLiabilities   decimal.Decimal            `json:"totalLiabilities"`
	AssetBreakdown     map[string]decimal.Decimal `json:"assetBreakdown"`
	LiabilityBreakdown map[string]decimal.Decimal `json:"liabilityBreakdown"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Holding tracks a position at average cost. TotalInvested and
// AveragePrice are maintained together by the buy/sell math in
// internal/finance.
type Holding struct {
	ID            string          `json:"id"`
	UserID        string          `json:"-"`
	Symbol        string          `json:"symbol"`
	Shares        decimal.Decimal `json:"shares"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Watchlist is one row per user: the full symbol list is replaced on
// every write.
type Watchlist struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Symbols   []string  `json:"symbols"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockTransaction is the append-only buy/sell ledger behind holdings.
type StockTransaction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"-"`
	Symbol     string          `json:"symbol"`
	Type       string          `json:"type"`
	Shares     decimal.Decimal `json:"shares"`
	Price      decimal.Decimal `json:"price"`
	TotalValue decimal.Decimal `json:"totalValue"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ValidAssetCategory reports whether c is one of the asset category enums.
func ValidAssetCategory(c string) bool {
	switch c {
	case AssetBankAccounts, AssetInvestmentAccounts, AssetRealEstate, AssetVehicles, AssetOtherValuables:
		return true
	}
	return false
}

// ValidLiabilityCategory reports whether c is one of the liability category enums.
func ValidLiabilityCategory(c string) bool {
	switch c {
	case LiabilityCreditCards, LiabilityMortgages, LiabilityStudentLoans, LiabilityAutoLoans, LiabilityPersonalLoans, LiabilityOtherDebts:
		return true
	}
	return false
}
