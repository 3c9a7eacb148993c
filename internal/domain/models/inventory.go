package models

import "time"

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// InventoryItem captures fruit taken into storage.
type InventoryItem struct {
	ID               string    `json:"id" bson:"id"`
	FruitType        string    `json:"fruitType" bson:"fruitType"`
	Quantity         Quantity  `json:"quantity" bson:"quantity"`
	Unit             string    `json:"unit" bson:"unit"`
	Location         string    `json:"location" bson:"location"`
	ExpiryDate       string    `json:"expiryDate" bson:"expiryDate"`
	SupplierName     string    `json:"supplierName" bson:"supplierName"`
	StoreKeeperEmail string    `json:"storeKeeperEmail" bson:"storeKeeperEmail"`
	StoreKeeperName  string    `json:"storeKeeperName" bson:"storeKeeperName"`
	Date             string    `json:"date" bson:"date"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}

// StockMovement is a signed quantity event against a fruit type. The
// direction is fixed at creation.
type StockMovement struct {
	ID               string       `json:"id" bson:"id"`
	FruitType        string       `json:"fruitType" bson:"fruitType"`
	MovementType     MovementType `json:"movementType" bson:"movementType"`
	Quantity         Quantity     `json:"quantity" bson:"quantity"`
	Unit             string       `json:"unit" bson:"unit"`
	Reason           string       `json:"reason" bson:"reason"`
	Location         string       `json:"location" bson:"location"`
	StoreKeeperEmail string       `json:"storeKeeperEmail" bson:"storeKeeperEmail"`
	StoreKeeperName  string       `json:"storeKeeperName" bson:"storeKeeperName"`
	Date             string       `json:"date" bson:"date"`
	CreatedAt        time.Time    `json:"createdAt" bson:"createdAt"`
}

// Gradient records a post-harvest treatment applied to a fruit batch.
// Informational only; never part of the stock arithmetic.
type Gradient struct {
	ID               string    `json:"id" bson:"id"`
	GradientName     string    `json:"gradientName" bson:"gradientName"`
	FruitType        string    `json:"fruitType" bson:"fruitType"`
	Quantity         Quantity  `json:"quantity" bson:"quantity"`
	Unit             string    `json:"unit" bson:"unit"`
	Purpose          string    `json:"purpose" bson:"purpose"`
	ApplicationDate  string    `json:"applicationDate" bson:"applicationDate"`
	Notes            string    `json:"notes" bson:"notes"`
	StoreKeeperEmail string    `json:"storeKeeperEmail" bson:"storeKeeperEmail"`
	StoreKeeperName  string    `json:"storeKeeperName" bson:"storeKeeperName"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}

// StockLevel is one row of the current-stock projection.
type StockLevel struct {
	FruitType string  `json:"fruitType"`
	Quantity  float64 `json:"quantity"`
}

// ValidMovementType reports whether t is a known movement direction.
func ValidMovementType(t MovementType) bool {
	return t == MovementIn || t == MovementOut
}
