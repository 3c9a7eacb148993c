package metrics

import (
	"testing"

	"github.com/madiallo/fruittrack/internal/domain/models"
)

func TestComputeStats(t *testing.T) {
	purchases := []models.Purchase{
		{ID: "purchase-1", FruitType: "Orange", Amount: 100},
		{ID: "purchase-2", FruitType: "Mango", Amount: 50},
	}
	assignments := []models.Assignment{
		{ID: "assignment-1", Sales: []models.Sale{
			{ID: "sale-1", Revenue: 120},
			{ID: "sale-2", Revenue: 80},
		}},
		{ID: "assignment-2", Sales: []models.Sale{
			{ID: "sale-3", Revenue: 100},
		}},
	}
	carExpenses := []models.CarExpense{{ID: "car-expense-1", Amount: 30}}
	otherExpenses := []models.OtherExpense{{ID: "other-expense-1", Amount: 20}}
	payments := []models.SalaryPayment{
		{ID: "payment-1", MonthlySalary: 40, IsPaid: true},
		{ID: "payment-2", MonthlySalary: 500, IsPaid: false},
	}

	stats := ComputeStats(purchases, assignments, carExpenses, otherExpenses, payments)

	if stats.TotalPurchases != 150 {
		t.Errorf("TotalPurchases = %v, want 150", stats.TotalPurchases)
	}
	if stats.TotalSales != 300 {
		t.Errorf("TotalSales = %v, want 300", stats.TotalSales)
	}
	if stats.TotalSalaries != 40 {
		t.Errorf("TotalSalaries = %v, want 40 (unpaid records do not count)", stats.TotalSalaries)
	}
	if stats.NetProfit != 60 {
		t.Errorf("NetProfit = %v, want 60", stats.NetProfit)
	}
	if stats.ProfitMargin != 20 {
		t.Errorf("ProfitMargin = %v, want 20", stats.ProfitMargin)
	}
}

func TestComputeStatsNoSales(t *testing.T) {
	purchases := []models.Purchase{{ID: "purchase-1", Amount: 100}}

	stats := ComputeStats(purchases, nil, nil, nil, nil)

	if stats.NetProfit != -100 {
		t.Errorf("NetProfit = %v, want -100", stats.NetProfit)
	}
	if stats.ProfitMargin != 0 {
		t.Errorf("ProfitMargin with zero sales = %v, want 0", stats.ProfitMargin)
	}
}

func TestComputeFruitPerformance(t *testing.T) {
	purchases := []models.Purchase{
		{ID: "purchase-1", FruitType: "Apple", Amount: 50},
		{ID: "purchase-2", FruitType: "Mango", Amount: 200},
	}
	assignments := []models.Assignment{
		{ID: "assignment-1", FruitType: "Apple", Sales: []models.Sale{
			{ID: "sale-1", Revenue: 80},
		}},
		// A sale naming its own fruit type overrides the assignment's.
		{ID: "assignment-2", FruitType: "Apple", Sales: []models.Sale{
			{ID: "sale-2", FruitType: "Mango", Revenue: 150},
		}},
	}

	results := ComputeFruitPerformance(purchases, assignments)
	if len(results) != 2 {
		t.Fatalf("got %d fruit types, want 2", len(results))
	}

	// Apple: 80 - 50 = 30 profit, beats Mango at 150 - 200 = -50.
	apple := results[0]
	if apple.FruitType != "Apple" {
		t.Fatalf("results[0] = %s, want Apple ranked first by profit", apple.FruitType)
	}
	if apple.Profit != 30 {
		t.Errorf("Apple profit = %v, want 30", apple.Profit)
	}
	if apple.ProfitMargin != 37.5 {
		t.Errorf("Apple margin = %v, want 37.5", apple.ProfitMargin)
	}

	mango := results[1]
	if mango.Sales != 150 || mango.Purchases != 200 {
		t.Errorf("Mango totals = sales %v purchases %v, want 150/200", mango.Sales, mango.Purchases)
	}
	if mango.ProfitMargin != (-50.0/150.0)*100 {
		t.Errorf("Mango margin = %v, want %v", mango.ProfitMargin, (-50.0/150.0)*100)
	}
}

func TestComputeFruitPerformanceEmpty(t *testing.T) {
	if results := ComputeFruitPerformance(nil, nil); len(results) != 0 {
		t.Errorf("ComputeFruitPerformance(nil, nil) = %+v, want empty", results)
	}
}

func TestComputeMonthlyPerformance(t *testing.T) {
	purchases := []models.Purchase{
		{ID: "purchase-1", Amount: 100, Date: "2024-01-10"},
		{ID: "purchase-2", Amount: 60, Date: "2024-03-02"},
		{ID: "purchase-3", Amount: 999, Date: "2023-01-10"},
		{ID: "purchase-4", Amount: 999, Date: "not a date"},
	}
	assignments := []models.Assignment{
		{ID: "assignment-1", Sales: []models.Sale{
			{ID: "sale-1", Revenue: 150, Date: "2024-01-20"},
			// Timestamps from older clients carry a time suffix.
			{ID: "sale-2", Revenue: 40, Date: "2024-03-05T10:30:00Z"},
		}},
	}

	months := ComputeMonthlyPerformance(purchases, assignments, 2024)
	if len(months) != 12 {
		t.Fatalf("got %d months, want 12", len(months))
	}

	jan := months[0]
	if jan.Month != 1 || jan.TotalPurchases != 100 || jan.TotalSales != 150 || jan.Profit != 50 {
		t.Errorf("January = %+v, want purchases 100, sales 150, profit 50", jan)
	}

	mar := months[2]
	if mar.TotalPurchases != 60 || mar.TotalSales != 40 || mar.Profit != -20 {
		t.Errorf("March = %+v, want purchases 60, sales 40, profit -20", mar)
	}

	// Other-year and unparseable records land nowhere.
	var total float64
	for _, m := range months {
		total += m.TotalPurchases
	}
	if total != 160 {
		t.Errorf("yearly purchases = %v, want 160 (off-year records excluded)", total)
	}
}
