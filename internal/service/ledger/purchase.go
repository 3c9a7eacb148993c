package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

// PurchaseInput carries the caller-supplied fields of a new purchase.
// Identity fields left empty are stamped from the acting user by the
// transport layer before the input reaches the service.
type PurchaseInput struct {
	PurchaserEmail string          `json:"purchaserEmail"`
	EmployeeName   string          `json:"employeeName"`
	FruitType      string          `json:"fruitType"`
	Quantity       models.Quantity `json:"quantity"`
	Unit           string          `json:"unit"`
	BuyerName      string          `json:"buyerName"`
	Amount         float64         `json:"amount"`
	Date           string          `json:"date"`
}

// Purchases returns the persisted purchase collection.
func (s *Service) Purchases(ctx context.Context) ([]models.Purchase, error) {
	return records.Load[models.Purchase](ctx, s.store, records.KeyPurchases, s.logger)
}

// AddPurchase validates and appends a purchase record.
func (s *Service) AddPurchase(ctx context.Context, in PurchaseInput) (models.Purchase, error) {
	if in.FruitType == "" {
		return models.Purchase{}, models.Invalid("fruitType", "is required")
	}
	if err := models.ValidAmount("amount", in.Amount); err != nil {
		return models.Purchase{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	purchases, err := records.Load[models.Purchase](ctx, s.store, records.KeyPurchases, s.logger)
	if err != nil {
		return models.Purchase{}, err
	}

	purchase := models.Purchase{
		ID:             models.NewID("purchase"),
		PurchaserEmail: in.PurchaserEmail,
		EmployeeName:   in.EmployeeName,
		FruitType:      in.FruitType,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		BuyerName:      in.BuyerName,
		Amount:         in.Amount,
		Date:           in.Date,
		CreatedAt:      time.Now().UTC(),
	}

	purchases = append(purchases, purchase)
	if err := records.Save(ctx, s.store, records.KeyPurchases, purchases); err != nil {
		return models.Purchase{}, err
	}

	s.logger.Info("purchase recorded",
		zap.String("id", purchase.ID),
		zap.String("fruit", purchase.FruitType),
		zap.Float64("amount", purchase.Amount))
	return purchase, nil
}

// DeletePurchase removes the purchase with the given id. An absent id is a
// benign no-op; the returned bool reports whether a record was removed.
func (s *Service) DeletePurchase(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchases, err := records.Load[models.Purchase](ctx, s.store, records.KeyPurchases, s.logger)
	if err != nil {
		return false, err
	}

	kept := purchases[:0]
	removed := false
	for _, p := range purchases {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false, nil
	}

	if err := records.Save(ctx, s.store, records.KeyPurchases, kept); err != nil {
		return false, err
	}
	return true, nil
}
