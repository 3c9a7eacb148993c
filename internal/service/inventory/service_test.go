package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(records.NewMemoryStore(), nil)
}

func TestCurrentStockProjection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddItem(ctx, ItemInput{FruitType: "Orange", Quantity: 50, Unit: "kg"}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := svc.AddMovement(ctx, MovementInput{FruitType: "Orange", MovementType: models.MovementOut, Quantity: 20}); err != nil {
		t.Fatalf("AddMovement() error = %v", err)
	}

	levels, err := svc.CurrentStock(ctx)
	if err != nil {
		t.Fatalf("CurrentStock() error = %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("CurrentStock() = %+v, want a single fruit type", levels)
	}
	if levels[0].FruitType != "Orange" || levels[0].Quantity != 30 {
		t.Errorf("CurrentStock() = %+v, want Orange at 30", levels[0])
	}
}

func TestCurrentStockOmitsNonPositive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddItem(ctx, ItemInput{FruitType: "Mango", Quantity: 10}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := svc.AddMovement(ctx, MovementInput{FruitType: "Mango", MovementType: models.MovementOut, Quantity: 10}); err != nil {
		t.Fatalf("AddMovement() error = %v", err)
	}
	// A movement can reference a fruit with no intake at all.
	if _, err := svc.AddMovement(ctx, MovementInput{FruitType: "Banana", MovementType: models.MovementOut, Quantity: 5}); err != nil {
		t.Fatalf("AddMovement() error = %v", err)
	}

	levels, err := svc.CurrentStock(ctx)
	if err != nil {
		t.Fatalf("CurrentStock() error = %v", err)
	}
	if len(levels) != 0 {
		t.Errorf("CurrentStock() = %+v, want zero and negative totals omitted", levels)
	}
}

func TestCurrentStockIgnoresGradients(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddItem(ctx, ItemInput{FruitType: "Apple", Quantity: 12}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := svc.AddGradient(ctx, GradientInput{GradientName: "Ripener", FruitType: "Apple", Quantity: 100}); err != nil {
		t.Fatalf("AddGradient() error = %v", err)
	}

	levels, err := svc.CurrentStock(ctx)
	if err != nil {
		t.Fatalf("CurrentStock() error = %v", err)
	}
	if len(levels) != 1 || levels[0].Quantity != 12 {
		t.Errorf("CurrentStock() = %+v, want gradients left out of the tally", levels)
	}
}

func TestAddMovementRejectsUnknownDirection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddMovement(ctx, MovementInput{FruitType: "Orange", MovementType: "sideways", Quantity: 5})
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("AddMovement(sideways) error = %v, want ValidationError", err)
	}

	movements, err := svc.Movements(ctx)
	if err != nil {
		t.Fatalf("Movements() error = %v", err)
	}
	if len(movements) != 0 {
		t.Errorf("Movements() after rejected add = %+v, want empty", movements)
	}
}

func TestClearEmptiesAllCollections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddItem(ctx, ItemInput{FruitType: "Orange", Quantity: 5}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := svc.AddMovement(ctx, MovementInput{FruitType: "Orange", MovementType: models.MovementIn, Quantity: 5}); err != nil {
		t.Fatalf("AddMovement() error = %v", err)
	}
	if _, err := svc.AddGradient(ctx, GradientInput{GradientName: "Wax", FruitType: "Orange"}); err != nil {
		t.Fatalf("AddGradient() error = %v", err)
	}

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	items, _ := svc.Items(ctx)
	movements, _ := svc.Movements(ctx)
	gradients, _ := svc.Gradients(ctx)
	if len(items)+len(movements)+len(gradients) != 0 {
		t.Errorf("collections not empty after Clear: %d items, %d movements, %d gradients",
			len(items), len(movements), len(gradients))
	}
}
