package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/domain/models"
	"github.com/madiallo/fruittrack/internal/repository/records"
)

// AssignmentInput carries the caller-supplied fields of a new assignment.
type AssignmentInput struct {
	SellerEmail      string          `json:"sellerEmail"`
	SellerName       string          `json:"sellerName"`
	FruitType        string          `json:"fruitType"`
	QuantityAssigned models.Quantity `json:"quantityAssigned"`
	MoneyIssued      float64         `json:"moneyIssued"`
	TravelDate       string          `json:"travelDate"`
}

// SaleInput carries the caller-supplied fields of a new sale. Fruit type
// and seller identity seed a fresh assignment when the sale targets an
// unknown assignment id.
type SaleInput struct {
	FruitType    string          `json:"fruitType"`
	SellerName   string          `json:"sellerName"`
	SellerEmail  string          `json:"sellerEmail"`
	QuantitySold models.Quantity `json:"quantitySold"`
	Revenue      float64         `json:"revenue"`
	Date         string          `json:"date"`
}

// Assignments returns the persisted assignment collection.
func (s *Service) Assignments(ctx context.Context) ([]models.Assignment, error) {
	return records.Load[models.Assignment](ctx, s.store, records.KeyAssignments, s.logger)
}

// AddAssignment creates an assignment in the "assigned" state with an empty
// sales list.
func (s *Service) AddAssignment(ctx context.Context, in AssignmentInput) (models.Assignment, error) {
	if in.FruitType == "" {
		return models.Assignment{}, models.Invalid("fruitType", "is required")
	}
	if err := models.ValidAmount("moneyIssued", in.MoneyIssued); err != nil {
		return models.Assignment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assignments, err := s.Assignments(ctx)
	if err != nil {
		return models.Assignment{}, err
	}

	assignment := models.Assignment{
		ID:               models.NewID("assignment"),
		SellerEmail:      in.SellerEmail,
		SellerName:       in.SellerName,
		FruitType:        in.FruitType,
		QuantityAssigned: in.QuantityAssigned,
		MoneyIssued:      in.MoneyIssued,
		TravelDate:       in.TravelDate,
		Status:           models.StatusAssigned,
		Sales:            []models.Sale{},
		CreatedAt:        time.Now().UTC(),
	}

	assignments = append(assignments, assignment)
	if err := records.Save(ctx, s.store, records.KeyAssignments, assignments); err != nil {
		return models.Assignment{}, err
	}

	s.logger.Info("seller assigned",
		zap.String("id", assignment.ID),
		zap.String("seller", assignment.SellerName),
		zap.String("fruit", assignment.FruitType))
	return assignment, nil
}

// AddSale records a sale against an assignment. This is an upsert: when
// assignmentID matches an existing assignment the sale is appended to it
// and an "assigned" status advances to "in-transit"; when it matches
// nothing, a new in-transit assignment is created under that id, seeded
// from the sale's fruit type and seller identity. Sellers may record
// ad-hoc sales without a prior formal assignment.
func (s *Service) AddSale(ctx context.Context, assignmentID string, in SaleInput) (models.Assignment, error) {
	if err := models.ValidAmount("revenue", in.Revenue); err != nil {
		return models.Assignment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assignments, err := s.Assignments(ctx)
	if err != nil {
		return models.Assignment{}, err
	}

	if assignmentID == "" {
		assignmentID = models.NewID("assignment")
	}

	sale := models.Sale{
		ID:           models.NewID("sale"),
		AssignmentID: assignmentID,
		FruitType:    in.FruitType,
		SellerName:   in.SellerName,
		SellerEmail:  in.SellerEmail,
		QuantitySold: in.QuantitySold,
		Revenue:      in.Revenue,
		Date:         in.Date,
		CreatedAt:    time.Now().UTC(),
	}

	for i := range assignments {
		if assignments[i].ID != assignmentID {
			continue
		}
		assignments[i].Sales = append(assignments[i].Sales, sale)
		if assignments[i].Status == models.StatusAssigned {
			assignments[i].Status = models.StatusInTransit
		}
		if err := records.Save(ctx, s.store, records.KeyAssignments, assignments); err != nil {
			return models.Assignment{}, err
		}
		s.logger.Info("sale recorded",
			zap.String("assignment", assignmentID),
			zap.String("sale", sale.ID),
			zap.Float64("revenue", sale.Revenue))
		return assignments[i], nil
	}

	created := models.Assignment{
		ID:          assignmentID,
		SellerEmail: in.SellerEmail,
		SellerName:  in.SellerName,
		FruitType:   in.FruitType,
		Status:      models.StatusInTransit,
		Sales:       []models.Sale{sale},
		CreatedAt:   time.Now().UTC(),
	}
	assignments = append(assignments, created)
	if err := records.Save(ctx, s.store, records.KeyAssignments, assignments); err != nil {
		return models.Assignment{}, err
	}

	s.logger.Info("ad-hoc sale created new assignment",
		zap.String("assignment", assignmentID),
		zap.String("sale", sale.ID))
	return created, nil
}

// DeleteSale removes one sale from its assignment. The assignment itself is
// retained even when its sales list becomes empty.
func (s *Service) DeleteSale(ctx context.Context, assignmentID, saleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments, err := s.Assignments(ctx)
	if err != nil {
		return false, err
	}

	removed := false
	for i := range assignments {
		if assignments[i].ID != assignmentID {
			continue
		}
		kept := assignments[i].Sales[:0]
		for _, sale := range assignments[i].Sales {
			if sale.ID == saleID {
				removed = true
				continue
			}
			kept = append(kept, sale)
		}
		assignments[i].Sales = kept
	}
	if !removed {
		return false, nil
	}

	if err := records.Save(ctx, s.store, records.KeyAssignments, assignments); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateAssignmentStatus moves an assignment to the given status. The state
// machine only advances (assigned -> in-transit -> completed); a transition
// backwards is rejected as a validation failure. An unknown id is a no-op.
func (s *Service) UpdateAssignmentStatus(ctx context.Context, id string, status models.AssignmentStatus) (models.Assignment, bool, error) {
	if rank(status) < 0 {
		return models.Assignment{}, false, models.Invalid("status", "unknown status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assignments, err := s.Assignments(ctx)
	if err != nil {
		return models.Assignment{}, false, err
	}

	for i := range assignments {
		if assignments[i].ID != id {
			continue
		}
		if rank(status) < rank(assignments[i].Status) {
			return models.Assignment{}, false, models.Invalid("status", "cannot regress")
		}
		assignments[i].Status = status
		if err := records.Save(ctx, s.store, records.KeyAssignments, assignments); err != nil {
			return models.Assignment{}, false, err
		}
		return assignments[i], true, nil
	}
	return models.Assignment{}, false, nil
}

// DeleteAssignment removes an assignment and, by composition, every sale it
// owns.
func (s *Service) DeleteAssignment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments, err := s.Assignments(ctx)
	if err != nil {
		return false, err
	}

	kept := assignments[:0]
	removed := false
	for _, a := range assignments {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return false, nil
	}

	if err := records.Save(ctx, s.store, records.KeyAssignments, kept); err != nil {
		return false, err
	}
	return true, nil
}

func rank(status models.AssignmentStatus) int {
	switch status {
	case models.StatusAssigned:
		return 0
	case models.StatusInTransit:
		return 1
	case models.StatusCompleted:
		return 2
	}
	return -1
}
