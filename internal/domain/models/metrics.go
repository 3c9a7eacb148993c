package models

// Stats is the company-wide financial summary, recomputed on demand.
// Unpaid salary payments are excluded from totalSalaries.
type Stats struct {
	TotalPurchases     float64 `json:"totalPurchases"`
	TotalSales         float64 `json:"totalSales"`
	TotalCarExpenses   float64 `json:"totalCarExpenses"`
	TotalOtherExpenses float64 `json:"totalOtherExpenses"`
	TotalSalaries      float64 `json:"totalSalaries"`
	NetProfit          float64 `json:"netProfit"`
	ProfitMargin       float64 `json:"profitMargin"`
}

// FruitPerformance is the per-fruit-type breakdown, ranked by profit.
type FruitPerformance struct {
	FruitType    string  `json:"fruitType"`
	Purchases    float64 `json:"purchases"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// MonthlyPerformance is one calendar month of sales versus purchases.
type MonthlyPerformance struct {
	Month          int     `json:"month"`
	TotalSales     float64 `json:"totalSales"`
	TotalPurchases float64 `json:"totalPurchases"`
	Profit         float64 `json:"profit"`
}
