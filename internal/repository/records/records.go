package records

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Collection keys. Each entity type persists as one independently
// addressable array under its key; there is no cross-key transaction.
const (
	KeyPurchases      = "fruittrack_purchases"
	KeyAssignments    = "fruittrack_assignments"
	KeyCarExpenses    = "fruittrack_car_expenses"
	KeyOtherExpenses  = "fruittrack_other_expenses"
	KeySalaries       = "fruittrack_salaries"
	KeySalaryPayments = "fruittrack_salary_payments"
	KeyCeoMessages    = "fruittrack_ceo_messages"
	KeyInventory      = "fruittrack_inventory"
	KeyStockMovements = "fruittrack_stock_movements"
	KeyGradients      = "fruittrack_gradients"
)

// Store is the persistence abstraction every other component builds on.
// Get returns the raw payload for a key, or nil when absent. Set replaces
// the payload for a key atomically with respect to that key only.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
	Remove(ctx context.Context, key string) error
}

// Load fetches and decodes the collection stored under key. An absent key
// yields an empty collection. A payload that fails to decode also yields an
// empty collection with a logged warning: corruption is recovered, never
// propagated. Transport errors from a remote store do propagate, rejecting
// the operation.
func Load[T any](ctx context.Context, s Store, key string, logger *zap.Logger) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		if logger != nil {
			logger.Warn("corrupt collection payload, substituting empty collection",
				zap.String("key", key), zap.Error(err))
		}
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Save encodes the collection and replaces the payload stored under key.
func Save[T any](ctx context.Context, s Store, key string, collection []T) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	if err := s.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}
	return nil
}
