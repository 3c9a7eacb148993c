// Package inventory owns the stock-side collections: intake records, stock
// movements and gradient applications. Current stock is never stored; it is
// a projection over intake plus the movement log.
package inventory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

// Service is the inventory ledger.
type Service struct {
	store  records.Store
	logger *zap.Logger

	mu sync.Mutex
}

// NewService wires an inventory ledger over the given record store.
func NewService(store records.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// ItemInput carries the caller-supplied fields of an intake record.
type ItemInput struct {
	FruitType        string          `json:"fruitType"`
	Quantity         models.Quantity `json:"quantity"`
	Unit             string          `json:"unit"`
	Location         string          `json:"location"`
	ExpiryDate       string          `json:"expiryDate"`
	SupplierName     string          `json:"supplierName"`
	StoreKeeperEmail string          `json:"storeKeeperEmail"`
	StoreKeeperName  string          `json:"storeKeeperName"`
	Date             string          `json:"date"`
}

// MovementInput carries the caller-supplied fields of a stock movement.
type MovementInput struct {
	FruitType        string              `json:"fruitType"`
	MovementType     models.MovementType `json:"movementType"`
	Quantity         models.Quantity     `json:"quantity"`
	Unit             string              `json:"unit"`
	Reason           string              `json:"reason"`
	Location         string              `json:"location"`
	StoreKeeperEmail string              `json:"storeKeeperEmail"`
	StoreKeeperName  string              `json:"storeKeeperName"`
	Date             string              `json:"date"`
}

// GradientInput carries the caller-supplied fields of a gradient record.
type GradientInput struct {
	GradientName     string          `json:"gradientName"`
	FruitType        string          `json:"fruitType"`
	Quantity         models.Quantity `json:"quantity"`
	Unit             string          `json:"unit"`
	Purpose          string          `json:"purpose"`
	ApplicationDate  string          `json:"applicationDate"`
	Notes            string          `json:"notes"`
	StoreKeeperEmail string          `json:"storeKeeperEmail"`
	StoreKeeperName  string          `json:"storeKeeperName"`
}

// Items returns the persisted intake collection.
func (s *Service) Items(ctx context.Context) ([]models.InventoryItem, error) {
	return records.Load[models.InventoryItem](ctx, s.store, records.KeyInventory, s.logger)
}

// Movements returns the persisted movement log.
func (s *Service) Movements(ctx context.Context) ([]models.StockMovement, error) {
	return records.Load[models.StockMovement](ctx, s.store, records.KeyStockMovements, s.logger)
}

// Gradients returns the persisted gradient collection.
func (s *Service) Gradients(ctx context.Context) ([]models.Gradient, error) {
	return records.Load[models.Gradient](ctx, s.store, records.KeyGradients, s.logger)
}

// AddItem validates and appends an intake record.
func (s *Service) AddItem(ctx context.Context, in ItemInput) (models.InventoryItem, error) {
	if in.FruitType == "" {
		return models.InventoryItem{}, models.Invalid("fruitType", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.Items(ctx)
	if err != nil {
		return models.InventoryItem{}, err
	}

	item := models.InventoryItem{
		ID:               models.NewID("inventory"),
		FruitType:        in.FruitType,
		Quantity:         in.Quantity,
		Unit:             in.Unit,
		Location:         in.Location,
		ExpiryDate:       in.ExpiryDate,
		SupplierName:     in.SupplierName,
		StoreKeeperEmail: in.StoreKeeperEmail,
		StoreKeeperName:  in.StoreKeeperName,
		Date:             in.Date,
		CreatedAt:        time.Now().UTC(),
	}

	items = append(items, item)
	if err := records.Save(ctx, s.store, records.KeyInventory, items); err != nil {
		return models.InventoryItem{}, err
	}

	s.logger.Info("inventory intake recorded",
		zap.String("id", item.ID),
		zap.String("fruit", item.FruitType),
		zap.Float64("quantity", item.Quantity.Float()))
	return item, nil
}

// AddMovement validates and appends a stock movement. The direction is
// fixed at creation.
func (s *Service) AddMovement(ctx context.Context, in MovementInput) (models.StockMovement, error) {
	if in.FruitType == "" {
		return models.StockMovement{}, models.Invalid("fruitType", "is required")
	}
	if !models.ValidMovementType(in.MovementType) {
		return models.StockMovement{}, models.Invalid("movementType", "must be in or out")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	movements, err := s.Movements(ctx)
	if err != nil {
		return models.StockMovement{}, err
	}

	movement := models.StockMovement{
		ID:               models.NewID("movement"),
		FruitType:        in.FruitType,
		MovementType:     in.MovementType,
		Quantity:         in.Quantity,
		Unit:             in.Unit,
		Reason:           in.Reason,
		Location:         in.Location,
		StoreKeeperEmail: in.StoreKeeperEmail,
		StoreKeeperName:  in.StoreKeeperName,
		Date:             in.Date,
		CreatedAt:        time.Now().UTC(),
	}

	movements = append(movements, movement)
	if err := records.Save(ctx, s.store, records.KeyStockMovements, movements); err != nil {
		return models.StockMovement{}, err
	}

	s.logger.Info("stock movement recorded",
		zap.String("id", movement.ID),
		zap.String("fruit", movement.FruitType),
		zap.String("direction", string(movement.MovementType)),
		zap.Float64("quantity", movement.Quantity.Float()))
	return movement, nil
}

// AddGradient appends a gradient application record.
func (s *Service) AddGradient(ctx context.Context, in GradientInput) (models.Gradient, error) {
	if in.GradientName == "" {
		return models.Gradient{}, models.Invalid("gradientName", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gradients, err := s.Gradients(ctx)
	if err != nil {
		return models.Gradient{}, err
	}

	gradient := models.Gradient{
		ID:               models.NewID("gradient"),
		GradientName:     in.GradientName,
		FruitType:        in.FruitType,
		Quantity:         in.Quantity,
		Unit:             in.Unit,
		Purpose:          in.Purpose,
		ApplicationDate:  in.ApplicationDate,
		Notes:            in.Notes,
		StoreKeeperEmail: in.StoreKeeperEmail,
		StoreKeeperName:  in.StoreKeeperName,
		CreatedAt:        time.Now().UTC(),
	}

	gradients = append(gradients, gradient)
	if err := records.Save(ctx, s.store, records.KeyGradients, gradients); err != nil {
		return models.Gradient{}, err
	}

	s.logger.Info("gradient application recorded",
		zap.String("id", gradient.ID),
		zap.String("gradient", gradient.GradientName))
	return gradient, nil
}

// CurrentStock projects on-hand quantity per fruit type: every intake
// quantity counts positive, then each movement applies as +quantity for
// "in" and -quantity for "out", in insertion order. Fruit types that net to
// zero or below are omitted entirely. Unparseable quantities already
// decoded to 0, so the projection never fails.
func (s *Service) CurrentStock(ctx context.Context) ([]models.StockLevel, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := s.Movements(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	var order []string

	tally := func(fruit string, delta float64) {
		if _, seen := totals[fruit]; !seen {
			order = append(order, fruit)
		}
		totals[fruit] += delta
	}

	for _, item := range items {
		tally(item.FruitType, item.Quantity.Float())
	}
	for _, movement := range movements {
		delta := movement.Quantity.Float()
		if movement.MovementType == models.MovementOut {
			delta = -delta
		}
		tally(movement.FruitType, delta)
	}

	levels := make([]models.StockLevel, 0, len(order))
	for _, fruit := range order {
		if totals[fruit] <= 0 {
			continue
		}
		levels = append(levels, models.StockLevel{FruitType: fruit, Quantity: totals[fruit]})
	}
	return levels, nil
}

// Clear empties intake, movements and gradients together; the stock
// projection is derived from the first two, so they only reset as a unit.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := records.Save(ctx, s.store, records.KeyInventory, []models.InventoryItem{}); err != nil {
		return err
	}
	if err := records.Save(ctx, s.store, records.KeyStockMovements, []models.StockMovement{}); err != nil {
		return err
	}
	if err := records.Save(ctx, s.store, records.KeyGradients, []models.Gradient{}); err != nil {
		return err
	}
	s.logger.Info("inventory collections cleared")
	return nil
}
