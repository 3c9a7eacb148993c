package models

import "time"

// AssignmentStatus tracks a seller assignment through its lifecycle.
// Transitions only ever advance: assigned -> in-transit -> completed.
type AssignmentStatus string

const (
	StatusAssigned  AssignmentStatus = "assigned"
	StatusInTransit AssignmentStatus = "in-transit"
	StatusCompleted AssignmentStatus = "completed"
)

// CarExpenseType enumerates the vehicle expense categories.
type CarExpenseType string

const (
	CarExpenseFuel        CarExpenseType = "fuel"
	CarExpenseRepair      CarExpenseType = "repair"
	CarExpenseMaintenance CarExpenseType = "maintenance"
	CarExpenseOther       CarExpenseType = "other"
)

// MessageRecipient selects which role a CEO message is addressed to.
type MessageRecipient string

const (
	RecipientAll         MessageRecipient = "all"
	RecipientPurchaser   MessageRecipient = "purchaser"
	RecipientSeller      MessageRecipient = "seller"
	RecipientDriver      MessageRecipient = "driver"
	RecipientStoreKeeper MessageRecipient = "store keeper"
)

// Actor is the already-authenticated identity performing an operation.
// The engine never authenticates; it only stamps ownership fields.
type Actor struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Purchase records fruit bought from a supplier.
type Purchase struct {
	ID             string    `json:"id" bson:"id"`
	PurchaserEmail string    `json:"purchaserEmail" bson:"purchaserEmail"`
	EmployeeName   string    `json:"employeeName" bson:"employeeName"`
	FruitType      string    `json:"fruitType" bson:"fruitType"`
	Quantity       Quantity  `json:"quantity" bson:"quantity"`
	Unit           string    `json:"unit" bson:"unit"`
	BuyerName      string    `json:"buyerName" bson:"buyerName"`
	Amount         float64   `json:"amount" bson:"amount"`
	Date           string    `json:"date" bson:"date"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// Sale is a single revenue transaction against an assignment.
type Sale struct {
	ID           string    `json:"id" bson:"id"`
	AssignmentID string    `json:"assignmentId" bson:"assignmentId"`
	FruitType    string    `json:"fruitType,omitempty" bson:"fruitType,omitempty"`
	SellerName   string    `json:"sellerName,omitempty" bson:"sellerName,omitempty"`
	SellerEmail  string    `json:"sellerEmail,omitempty" bson:"sellerEmail,omitempty"`
	QuantitySold Quantity  `json:"quantitySold" bson:"quantitySold"`
	Revenue      float64   `json:"revenue" bson:"revenue"`
	Date         string    `json:"date" bson:"date"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// Assignment is a seller's outstanding batch of stock, owning its sales.
// Deleting an assignment removes its sales with it.
type Assignment struct {
	ID               string           `json:"id" bson:"id"`
	SellerEmail      string           `json:"sellerEmail" bson:"sellerEmail"`
	SellerName       string           `json:"sellerName" bson:"sellerName"`
	FruitType        string           `json:"fruitType" bson:"fruitType"`
	QuantityAssigned Quantity         `json:"quantityAssigned" bson:"quantityAssigned"`
	MoneyIssued      float64          `json:"moneyIssued" bson:"moneyIssued"`
	TravelDate       string           `json:"travelDate" bson:"travelDate"`
	Status           AssignmentStatus `json:"status" bson:"status"`
	Sales            []Sale           `json:"sales" bson:"sales"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt"`
}

// CarExpense records a vehicle-related cost.
type CarExpense struct {
	ID          string         `json:"id" bson:"id"`
	DriverEmail string         `json:"driverEmail" bson:"driverEmail"`
	Type        CarExpenseType `json:"type" bson:"type"`
	Description string         `json:"description" bson:"description"`
	Amount      float64        `json:"amount" bson:"amount"`
	Date        string         `json:"date" bson:"date"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
}

// OtherExpense records a miscellaneous cost.
type OtherExpense struct {
	ID          string    `json:"id" bson:"id"`
	Description string    `json:"description" bson:"description"`
	Amount      float64   `json:"amount" bson:"amount"`
	Date        string    `json:"date" bson:"date"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// UserSalary is the base salary on file for one user.
type UserSalary struct {
	ID         string    `json:"id" bson:"id"`
	UserEmail  string    `json:"userEmail" bson:"userEmail"`
	UserName   string    `json:"userName" bson:"userName"`
	UserRole   string    `json:"userRole" bson:"userRole"`
	BaseSalary float64   `json:"baseSalary" bson:"baseSalary"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// SalaryPayment is one month's salary disbursement, toggled paid/unpaid.
type SalaryPayment struct {
	ID            string    `json:"id" bson:"id"`
	UserEmail     string    `json:"userEmail" bson:"userEmail"`
	UserName      string    `json:"userName" bson:"userName"`
	UserRole      string    `json:"userRole" bson:"userRole"`
	MonthlySalary float64   `json:"monthlySalary" bson:"monthlySalary"`
	PaymentDate   string    `json:"paymentDate" bson:"paymentDate"`
	IsPaid        bool      `json:"isPaid" bson:"isPaid"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// CeoMessage is an internal announcement addressed to a role (or everyone).
type CeoMessage struct {
	ID        string           `json:"id" bson:"id"`
	Message   string           `json:"message" bson:"message"`
	Recipient MessageRecipient `json:"recipient" bson:"recipient"`
	IsRead    bool             `json:"isRead" bson:"isRead"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

// VisibleTo reports whether a message should be shown to the given role.
// Recipient filtering is a read-side concern only.
func (m CeoMessage) VisibleTo(role string) bool {
	return m.Recipient == RecipientAll || string(m.Recipient) == role
}

// ValidCarExpenseType reports membership in the known expense categories.
func ValidCarExpenseType(t CarExpenseType) bool {
	switch t {
	case CarExpenseFuel, CarExpenseRepair, CarExpenseMaintenance, CarExpenseOther:
		return true
	}
	return false
}

// ValidRecipient reports membership in the known message recipients.
func ValidRecipient(r MessageRecipient) bool {
	switch r {
	case RecipientAll, RecipientPurchaser, RecipientSeller, RecipientDriver, RecipientStoreKeeper:
		return true
	}
	return false
}
