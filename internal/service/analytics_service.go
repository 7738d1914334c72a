package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/finance"
	"github.com/gil10101/sokin-sub000/internal/repository"
)

// SpendingReport bundles the trend, comparison and insight reductions
// computed over one expense snapshot.
type SpendingReport struct {
	MonthlyData  []finance.MonthAmount    `json:"monthlyData"`
	CategoryData []finance.CategoryAmount `json:"categoryData"`
	Insights     finance.Insights         `json:"insights"`
}

type AnalyticsService struct {
	expenses *repository.ExpenseRepository
}

func NewAnalyticsService(expenses *repository.ExpenseRepository) *AnalyticsService {
	return &AnalyticsService{expenses: expenses}
}

func (s *AnalyticsService) Spending(ctx context.Context, q cqrs.SpendingAnalyticsQuery) (*SpendingReport, error) {
	switch q.Months {
	case 3, 6, 12:
	default:
		return nil, fmt.Errorf("months must be 3, 6 or 12")
	}

	expenses, err := s.expenses.ListByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthly := finance.MonthlyTrend(expenses, q.Months, now)
	categories := finance.CategoryComparison(expenses, q.Months, now)
	return &SpendingReport{
		MonthlyData:  monthly,
		CategoryData: categories,
		Insights:     finance.SpendingInsights(monthly, categories),
	}, nil
}
