// Package export writes on-demand snapshots of the derived numbers to a
// configured Google Sheet. Export happens only when a caller asks for it;
// nothing here runs on a schedule.
package export

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/sheets"
)

const (
	statsRange = "Stats!A:I"
	fruitRange = "FruitPerformance!A:G"
	stockRange = "Stock!A:D"

	timestampLayout = "2006-01-02 15:04:05"
)

// MetricsSource provides the derived numbers a snapshot contains.
type MetricsSource interface {
	Stats(ctx context.Context) (models.Stats, error)
	FruitPerformance(ctx context.Context) ([]models.FruitPerformance, error)
}

// StockSource provides the current-stock projection.
type StockSource interface {
	CurrentStock(ctx context.Context) ([]models.StockLevel, error)
}

// Service appends snapshot rows to the spreadsheet.
type Service struct {
	repo    sheets.Repository
	metrics MetricsSource
	stock   StockSource
	logger  *zap.Logger
}

// NewService wires a snapshot exporter.
func NewService(repo sheets.Repository, metrics MetricsSource, stock StockSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, metrics: metrics, stock: stock, logger: logger}
}

// Snapshot computes current stats, fruit performance and stock levels and
// appends one timestamped row set per sheet.
func (s *Service) Snapshot(ctx context.Context) error {
	now := time.Now().UTC().Format(timestampLayout)

	stats, err := s.metrics.Stats(ctx)
	if err != nil {
		return fmt.Errorf("snapshot stats: %w", err)
	}
	if err := s.repo.AppendRows(ctx, statsRange, [][]interface{}{{
		now,
		stats.TotalPurchases,
		stats.TotalSales,
		stats.TotalCarExpenses,
		stats.TotalOtherExpenses,
		stats.TotalSalaries,
		stats.NetProfit,
		stats.ProfitMargin,
	}}); err != nil {
		return err
	}

	performance, err := s.metrics.FruitPerformance(ctx)
	if err != nil {
		return fmt.Errorf("snapshot fruit performance: %w", err)
	}
	fruitRows := make([][]interface{}, 0, len(performance))
	for _, p := range performance {
		fruitRows = append(fruitRows, []interface{}{
			now, p.FruitType, p.Purchases, p.Sales, p.Profit, p.ProfitMargin,
		})
	}
	if err := s.repo.AppendRows(ctx, fruitRange, fruitRows); err != nil {
		return err
	}

	levels, err := s.stock.CurrentStock(ctx)
	if err != nil {
		return fmt.Errorf("snapshot stock: %w", err)
	}
	stockRows := make([][]interface{}, 0, len(levels))
	for _, level := range levels {
		stockRows = append(stockRows, []interface{}{now, level.FruitType, level.Quantity})
	}
	if err := s.repo.AppendRows(ctx, stockRange, stockRows); err != nil {
		return err
	}

	s.logger.Info("snapshot exported",
		zap.Int("fruit_rows", len(fruitRows)),
		zap.Int("stock_rows", len(stockRows)))
	return nil
}
