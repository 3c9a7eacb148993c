// Package metrics computes aggregate financial and performance numbers
// from the ledger collections. The computations are pure and stateless:
// nothing is cached, every call reads current collections and derives the
// result from scratch. Missing or malformed inputs contribute zero; no
// computation here ever fails.
package metrics

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
)

const dateLayout = "2006-01-02"

// LedgerReader is the slice of the ledger repository the engine reads.
type LedgerReader interface {
	Purchases(ctx context.Context) ([]models.Purchase, error)
	Assignments(ctx context.Context) ([]models.Assignment, error)
	CarExpenses(ctx context.Context) ([]models.CarExpense, error)
	OtherExpenses(ctx context.Context) ([]models.OtherExpense, error)
	SalaryPayments(ctx context.Context) ([]models.SalaryPayment, error)
}

// Service reads ledger collections and exposes the derived numbers.
type Service struct {
	ledger LedgerReader
	logger *zap.Logger
}

// NewService wires a metrics engine over the ledger repository.
func NewService(ledger LedgerReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{ledger: ledger, logger: logger}
}

// Stats recomputes the company-wide summary from current collections.
func (s *Service) Stats(ctx context.Context) (models.Stats, error) {
	purchases, err := s.ledger.Purchases(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	assignments, err := s.ledger.Assignments(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	carExpenses, err := s.ledger.CarExpenses(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	otherExpenses, err := s.ledger.OtherExpenses(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	payments, err := s.ledger.SalaryPayments(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	return ComputeStats(purchases, assignments, carExpenses, otherExpenses, payments), nil
}

// FruitPerformance recomputes the per-fruit ranking from current collections.
func (s *Service) FruitPerformance(ctx context.Context) ([]models.FruitPerformance, error) {
	purchases, err := s.ledger.Purchases(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.ledger.Assignments(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeFruitPerformance(purchases, assignments), nil
}

// MonthlyPerformance recomputes the month-by-month breakdown for a year.
func (s *Service) MonthlyPerformance(ctx context.Context, year int) ([]models.MonthlyPerformance, error) {
	purchases, err := s.ledger.Purchases(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.ledger.Assignments(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeMonthlyPerformance(purchases, assignments, year), nil
}

// ComputeStats derives the financial summary. Only payments flagged paid
// count toward salary expenses, and the margin is defined as 0 when there
// are no sales.
func ComputeStats(
	purchases []models.Purchase,
	assignments []models.Assignment,
	carExpenses []models.CarExpense,
	otherExpenses []models.OtherExpense,
	payments []models.SalaryPayment,
) models.Stats {
	var stats models.Stats

	for _, p := range purchases {
		stats.TotalPurchases += p.Amount
	}
	for _, a := range assignments {
		for _, sale := range a.Sales {
			stats.TotalSales += sale.Revenue
		}
	}
	for _, e := range carExpenses {
		stats.TotalCarExpenses += e.Amount
	}
	for _, e := range otherExpenses {
		stats.TotalOtherExpenses += e.Amount
	}
	for _, p := range payments {
		if p.IsPaid {
			stats.TotalSalaries += p.MonthlySalary
		}
	}

	stats.NetProfit = stats.TotalSales -
		(stats.TotalPurchases + stats.TotalCarExpenses + stats.TotalOtherExpenses + stats.TotalSalaries)
	if stats.TotalSales > 0 {
		stats.ProfitMargin = stats.NetProfit / stats.TotalSales * 100
	}
	return stats
}

// ComputeFruitPerformance groups purchases and sale revenue by fruit type
// and ranks the result by profit, descending. A sale carrying its own fruit
// type wins over its assignment's; ties keep insertion order.
func ComputeFruitPerformance(purchases []models.Purchase, assignments []models.Assignment) []models.FruitPerformance {
	index := make(map[string]int)
	var results []models.FruitPerformance

	entry := func(fruit string) *models.FruitPerformance {
		if i, ok := index[fruit]; ok {
			return &results[i]
		}
		index[fruit] = len(results)
		results = append(results, models.FruitPerformance{FruitType: fruit})
		return &results[len(results)-1]
	}

	for _, p := range purchases {
		if p.FruitType == "" {
			continue
		}
		entry(p.FruitType).Purchases += p.Amount
	}
	for _, a := range assignments {
		for _, sale := range a.Sales {
			fruit := sale.FruitType
			if fruit == "" {
				fruit = a.FruitType
			}
			if fruit == "" {
				continue
			}
			entry(fruit).Sales += sale.Revenue
		}
	}

	for i := range results {
		results[i].Profit = results[i].Sales - results[i].Purchases
		if results[i].Sales > 0 {
			results[i].ProfitMargin = results[i].Profit / results[i].Sales * 100
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Profit > results[j].Profit
	})
	return results
}

// ComputeMonthlyPerformance buckets sales and purchases into the twelve
// months of the given year by record date. Records with unparseable dates
// are skipped.
func ComputeMonthlyPerformance(purchases []models.Purchase, assignments []models.Assignment, year int) []models.MonthlyPerformance {
	months := make([]models.MonthlyPerformance, 12)
	for i := range months {
		months[i].Month = i + 1
	}

	for _, p := range purchases {
		if m, ok := monthOf(p.Date, year); ok {
			months[m-1].TotalPurchases += p.Amount
		}
	}
	for _, a := range assignments {
		for _, sale := range a.Sales {
			if m, ok := monthOf(sale.Date, year); ok {
				months[m-1].TotalSales += sale.Revenue
			}
		}
	}

	for i := range months {
		months[i].Profit = months[i].TotalSales - months[i].TotalPurchases
	}
	return months
}

func monthOf(date string, year int) (int, bool) {
	if len(date) > 10 {
		date = date[:10]
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil || t.Year() != year {
		return 0, false
	}
	return int(t.Month()), true
}
