package records

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []models.Purchase{
		{ID: "purchase-1", FruitType: "Orange", Amount: 100, Quantity: 10, Unit: "kg"},
		{ID: "purchase-2", FruitType: "Mango", Amount: 45.5},
	}
	if err := Save(ctx, store, KeyPurchases, original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load[models.Purchase](ctx, store, KeyPurchases, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestLoadAbsentKey(t *testing.T) {
	loaded, err := Load[models.Purchase](context.Background(), NewMemoryStore(), KeyPurchases, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Load() on absent key = %+v, want empty", loaded)
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Corruption is recovered as an empty collection, never an error.
	if err := store.Set(ctx, KeyPurchases, []byte(`{"not":"an array"`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	loaded, err := Load[models.Purchase](ctx, store, KeyPurchases, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() on corrupt payload error = %v, want nil", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Load() on corrupt payload = %+v, want empty", loaded)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := Save(ctx, store, KeyGradients, []models.Gradient{{ID: "gradient-1"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Remove(ctx, KeyGradients); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	raw, err := store.Get(ctx, KeyGradients)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if raw != nil {
		t.Errorf("Get() after Remove = %s, want nil", raw)
	}
}

func TestSetReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := Save(ctx, store, KeyCarExpenses, []models.CarExpense{{ID: "car-expense-1"}, {ID: "car-expense-2"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := Save(ctx, store, KeyCarExpenses, []models.CarExpense{{ID: "car-expense-3"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load[models.CarExpense](ctx, store, KeyCarExpenses, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "car-expense-3" {
		t.Errorf("Load() after replace = %+v, want only car-expense-3", loaded)
	}
}
