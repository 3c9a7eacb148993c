// Package ledger owns every transactional collection of the trading
// operation: purchases, seller assignments and their sales, vehicle and
// miscellaneous expenses, salaries and salary payments, and CEO messages.
// Every mutation is a full read-modify-write of one collection against the
// record store; records are immutable-by-replacement.
package ledger

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

// Service is the ledger repository. Mutations are serialized with a mutex
// so concurrent requests within one process cannot interleave their
// read-modify-write cycles; writers in other processes remain uncoordinated
// (last write wins).
type Service struct {
	store  records.Store
	logger *zap.Logger

	mu sync.Mutex
}

// NewService wires a ledger repository over the given record store.
func NewService(store records.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// ClearPurchases replaces the purchases collection with an empty array.
func (s *Service) ClearPurchases(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.Save(ctx, s.store, records.KeyPurchases, []models.Purchase{})
}

// ClearSales replaces the assignments collection (and with it every owned
// sale) with an empty array.
func (s *Service) ClearSales(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.Save(ctx, s.store, records.KeyAssignments, []models.Assignment{})
}

// ClearCarExpenses replaces the car expenses collection with an empty array.
func (s *Service) ClearCarExpenses(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.Save(ctx, s.store, records.KeyCarExpenses, []models.CarExpense{})
}

// ClearOtherExpenses replaces the other expenses collection with an empty array.
func (s *Service) ClearOtherExpenses(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.Save(ctx, s.store, records.KeyOtherExpenses, []models.OtherExpense{})
}

// ClearSalaries empties both the base salary records and the payment log;
// the two collections only make sense together.
func (s *Service) ClearSalaries(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := records.Save(ctx, s.store, records.KeySalaries, []models.UserSalary{}); err != nil {
		return err
	}
	return records.Save(ctx, s.store, records.KeySalaryPayments, []models.SalaryPayment{})
}

// ClearMessages replaces the CEO message collection with an empty array.
func (s *Service) ClearMessages(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.Save(ctx, s.store, records.KeyCeoMessages, []models.CeoMessage{})
}

// ClearAll empties every collection the ledger owns. Inventory collections
// belong to the inventory service and are cleared there.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.ClearPurchases(ctx); err != nil {
		return err
	}
	if err := s.ClearSales(ctx); err != nil {
		return err
	}
	if err := s.ClearCarExpenses(ctx); err != nil {
		return err
	}
	if err := s.ClearOtherExpenses(ctx); err != nil {
		return err
	}
	if err := s.ClearSalaries(ctx); err != nil {
		return err
	}
	if err := s.ClearMessages(ctx); err != nil {
		return err
	}
	s.logger.Info("all ledger collections cleared")
	return nil
}
