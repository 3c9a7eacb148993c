package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

// CarExpenseInput carries the caller-supplied fields of a vehicle expense.
type CarExpenseInput struct {
	DriverEmail string                `json:"driverEmail"`
	Type        models.CarExpenseType `json:"type"`
	Description string                `json:"description"`
	Amount      float64               `json:"amount"`
	Date        string                `json:"date"`
}

// OtherExpenseInput carries the caller-supplied fields of a misc expense.
type OtherExpenseInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// CarExpenses returns the persisted car expense collection.
func (s *Service) CarExpenses(ctx context.Context) ([]models.CarExpense, error) {
	return records.Load[models.CarExpense](ctx, s.store, records.KeyCarExpenses, s.logger)
}

// OtherExpenses returns the persisted other expense collection.
func (s *Service) OtherExpenses(ctx context.Context) ([]models.OtherExpense, error) {
	return records.Load[models.OtherExpense](ctx, s.store, records.KeyOtherExpenses, s.logger)
}

// AddCarExpense validates and appends a vehicle expense.
func (s *Service) AddCarExpense(ctx context.Context, in CarExpenseInput) (models.CarExpense, error) {
	if !models.ValidCarExpenseType(in.Type) {
		return models.CarExpense{}, models.Invalid("type", "unknown expense type")
	}
	if err := models.ValidAmount("amount", in.Amount); err != nil {
		return models.CarExpense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.CarExpenses(ctx)
	if err != nil {
		return models.CarExpense{}, err
	}

	expense := models.CarExpense{
		ID:          models.NewID("car-expense"),
		DriverEmail: in.DriverEmail,
		Type:        in.Type,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CreatedAt:   time.Now().UTC(),
	}

	expenses = append(expenses, expense)
	if err := records.Save(ctx, s.store, records.KeyCarExpenses, expenses); err != nil {
		return models.CarExpense{}, err
	}

	s.logger.Info("car expense recorded",
		zap.String("id", expense.ID),
		zap.String("type", string(expense.Type)),
		zap.Float64("amount", expense.Amount))
	return expense, nil
}

// AddOtherExpense validates and appends a miscellaneous expense.
func (s *Service) AddOtherExpense(ctx context.Context, in OtherExpenseInput) (models.OtherExpense, error) {
	if in.Description == "" {
		return models.OtherExpense{}, models.Invalid("description", "is required")
	}
	if err := models.ValidAmount("amount", in.Amount); err != nil {
		return models.OtherExpense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.OtherExpenses(ctx)
	if err != nil {
		return models.OtherExpense{}, err
	}

	expense := models.OtherExpense{
		ID:          models.NewID("other-expense"),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CreatedAt:   time.Now().UTC(),
	}

	expenses = append(expenses, expense)
	if err := records.Save(ctx, s.store, records.KeyOtherExpenses, expenses); err != nil {
		return models.OtherExpense{}, err
	}

	s.logger.Info("other expense recorded",
		zap.String("id", expense.ID),
		zap.Float64("amount", expense.Amount))
	return expense, nil
}

// DeleteCarExpense removes the car expense with the given id; absent ids
// are a benign no-op.
func (s *Service) DeleteCarExpense(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.CarExpenses(ctx)
	if err != nil {
		return false, err
	}

	kept := expenses[:0]
	removed := false
	for _, e := range expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}

	if err := records.Save(ctx, s.store, records.KeyCarExpenses, kept); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteOtherExpense removes the misc expense with the given id; absent ids
// are a benign no-op.
func (s *Service) DeleteOtherExpense(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.OtherExpenses(ctx)
	if err != nil {
		return false, err
	}

	kept := expenses[:0]
	removed := false
	for _, e := range expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}

	if err := records.Save(ctx, s.store, records.KeyOtherExpenses, kept); err != nil {
		return false, err
	}
	return true, nil
}
