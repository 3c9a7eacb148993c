package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

// UserSalaryInput carries the fields of a base salary record.
type UserSalaryInput struct {
	UserEmail  string  `json:"userEmail"`
	UserName   string  `json:"userName"`
	UserRole   string  `json:"userRole"`
	BaseSalary float64 `json:"baseSalary"`
}

// SalaryPaymentInput carries the fields of a monthly salary disbursement.
type SalaryPaymentInput struct {
	UserEmail     string  `json:"userEmail"`
	UserName      string  `json:"userName"`
	UserRole      string  `json:"userRole"`
	MonthlySalary float64 `json:"monthlySalary"`
	PaymentDate   string  `json:"paymentDate"`
}

// Salaries returns the persisted base salary collection.
func (s *Service) Salaries(ctx context.Context) ([]models.UserSalary, error) {
	return records.Load[models.UserSalary](ctx, s.store, records.KeySalaries, s.logger)
}

// SalaryPayments returns the persisted payment collection.
func (s *Service) SalaryPayments(ctx context.Context) ([]models.SalaryPayment, error) {
	return records.Load[models.SalaryPayment](ctx, s.store, records.KeySalaryPayments, s.logger)
}

// AddUserSalary sets the base salary on file for a user. A user keeps one
// logical record: an existing record with the same email is replaced.
func (s *Service) AddUserSalary(ctx context.Context, in UserSalaryInput) (models.UserSalary, error) {
	if in.UserEmail == "" {
		return models.UserSalary{}, models.Invalid("userEmail", "is required")
	}
	if err := models.ValidAmount("baseSalary", in.BaseSalary); err != nil {
		return models.UserSalary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	salaries, err := s.Salaries(ctx)
	if err != nil {
		return models.UserSalary{}, err
	}

	salary := models.UserSalary{
		ID:         models.NewID("salary"),
		UserEmail:  in.UserEmail,
		UserName:   in.UserName,
		UserRole:   in.UserRole,
		BaseSalary: in.BaseSalary,
		CreatedAt:  time.Now().UTC(),
	}

	replaced := false
	for i := range salaries {
		if salaries[i].UserEmail == in.UserEmail {
			salaries[i] = salary
			replaced = true
			break
		}
	}
	if !replaced {
		salaries = append(salaries, salary)
	}

	if err := records.Save(ctx, s.store, records.KeySalaries, salaries); err != nil {
		return models.UserSalary{}, err
	}

	s.logger.Info("user salary set",
		zap.String("user", salary.UserEmail),
		zap.Float64("baseSalary", salary.BaseSalary))
	return salary, nil
}

// UpdateUserSalary replaces the base salary of the user with the given
// email. An unknown user is a no-op; the bool reports whether a record was
// updated.
func (s *Service) UpdateUserSalary(ctx context.Context, userEmail string, baseSalary float64) (models.UserSalary, bool, error) {
	if err := models.ValidAmount("baseSalary", baseSalary); err != nil {
		return models.UserSalary{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	salaries, err := s.Salaries(ctx)
	if err != nil {
		return models.UserSalary{}, false, err
	}

	for i := range salaries {
		if salaries[i].UserEmail != userEmail {
			continue
		}
		salaries[i].BaseSalary = baseSalary
		if err := records.Save(ctx, s.store, records.KeySalaries, salaries); err != nil {
			return models.UserSalary{}, false, err
		}
		return salaries[i], true, nil
	}
	return models.UserSalary{}, false, nil
}

// RecordSalaryPayment appends a payment with isPaid=false; only the explicit
// toggle flips it.
func (s *Service) RecordSalaryPayment(ctx context.Context, in SalaryPaymentInput) (models.SalaryPayment, error) {
	if in.UserEmail == "" {
		return models.SalaryPayment{}, models.Invalid("userEmail", "is required")
	}
	if err := models.ValidAmount("monthlySalary", in.MonthlySalary); err != nil {
		return models.SalaryPayment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payments, err := s.SalaryPayments(ctx)
	if err != nil {
		return models.SalaryPayment{}, err
	}

	payment := models.SalaryPayment{
		ID:            models.NewID("payment"),
		UserEmail:     in.UserEmail,
		UserName:      in.UserName,
		UserRole:      in.UserRole,
		MonthlySalary: in.MonthlySalary,
		PaymentDate:   in.PaymentDate,
		IsPaid:        false,
		CreatedAt:     time.Now().UTC(),
	}

	payments = append(payments, payment)
	if err := records.Save(ctx, s.store, records.KeySalaryPayments, payments); err != nil {
		return models.SalaryPayment{}, err
	}

	s.logger.Info("salary payment recorded",
		zap.String("id", payment.ID),
		zap.String("user", payment.UserEmail))
	return payment, nil
}

// ToggleSalaryPayment flips isPaid on the matching payment. An unknown id
// fails silently; the bool reports whether a record was toggled.
func (s *Service) ToggleSalaryPayment(ctx context.Context, paymentID string) (models.SalaryPayment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments, err := s.SalaryPayments(ctx)
	if err != nil {
		return models.SalaryPayment{}, false, err
	}

	for i := range payments {
		if payments[i].ID != paymentID {
			continue
		}
		payments[i].IsPaid = !payments[i].IsPaid
		if err := records.Save(ctx, s.store, records.KeySalaryPayments, payments); err != nil {
			return models.SalaryPayment{}, false, err
		}
		return payments[i], true, nil
	}
	return models.SalaryPayment{}, false, nil
}
