package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"onecrew_paving/internal/domain/entities"
	"onecrew_paving/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoItems           = errors.New("items array is required")
	ErrUnknownCategory   = errors.New("unknown line item category")
	ErrInvalidMargin     = errors.New("margin must be below 100")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrMissingEstimate   = errors.New("estimate document is required")
	ErrEstimateNotFound  = errors.New("estimate not found")
)

// materialsTime is the fixed time multiplier for materials items: material
// quantities are not time-multiplied, whatever the client sent.
const materialsTime = 1

// IEstimateUseCase exposes estimate computation and persistence.
//
//   - Compute is the pure estimator: raw line items in, categorized and
//     priced breakdown out. No clock, no store.
//   - The remaining operations persist estimates under a customer's
//     partition, mirroring the customers/{id}/estimates document hierarchy.

type IEstimateUseCase interface {
	Compute(items []entities.LineItem) (entities.Estimate, error)
	Save(ctx context.Context, customerID string, e entities.Estimate) (string, error)
	GetByID(ctx context.Context, customerID, estimateID string) (entities.Estimate, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Estimate, error)
	Update(ctx context.Context, customerID, estimateID string, fields map[string]interface{}) (entities.Estimate, error)
	Delete(ctx context.Context, customerID, estimateID string) error
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

// Compute walks items in input order, derives cost and price per item and
// accumulates both totals. Items land in the bucket for their declared
// category, preserving input order per bucket; an unknown category fails the
// whole computation rather than dropping the item.
//
// A margin of 100 or more would make the price divisor zero or negative,
// so it is rejected up front.
func (u *EstimateUseCase) Compute(items []entities.LineItem) (entities.Estimate, error) {
	if len(items) == 0 {
		return entities.Estimate{}, ErrNoItems
	}

	var estimate entities.Estimate
	for _, item := range items {
		if item.Margin >= 100 {
			return entities.Estimate{}, ErrInvalidMargin
		}

		itemTime := item.Time
		if item.Type == entities.CategoryMaterials {
			itemTime = materialsTime
		}

		cost := item.Units * itemTime * item.Rate
		price := cost / (1 - item.Margin/100)

		detailed := entities.DetailedItem{
			Name:   item.Name,
			Units:  item.Units,
			Time:   itemTime,
			Rate:   item.Rate,
			Margin: item.Margin,
			Cost:   cost,
			Price:  price,
		}
		if !estimate.DetailedItems.Append(item.Type, detailed) {
			return entities.Estimate{}, ErrUnknownCategory
		}

		estimate.TotalCost += cost
		estimate.TotalPrice += price
	}

	return estimate, nil
}

// Save persists a computed estimate under customerID. The id and creation
// timestamp are assigned here, never taken from the client.
func (u *EstimateUseCase) Save(ctx context.Context, customerID string, e entities.Estimate) (string, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return "", ErrInvalidCustomerID
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, customerID, e)
	if err != nil {
		return "", err
	}
	return saved.ID, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, customerID, estimateID string) (entities.Estimate, error) {
	customerID = strings.TrimSpace(customerID)
	estimateID = strings.TrimSpace(estimateID)
	if customerID == "" {
		return entities.Estimate{}, ErrInvalidCustomerID
	}
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, customerID, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Estimate, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// Update merges fields into an existing estimate document. Missing targets
// fail with ErrEstimateNotFound; a partial payload never creates a document.
func (u *EstimateUseCase) Update(ctx context.Context, customerID, estimateID string, fields map[string]interface{}) (entities.Estimate, error) {
	customerID = strings.TrimSpace(customerID)
	estimateID = strings.TrimSpace(estimateID)
	if customerID == "" {
		return entities.Estimate{}, ErrInvalidCustomerID
	}
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if len(fields) == 0 {
		return entities.Estimate{}, ErrMissingEstimate
	}

	updated, err := u.repo.Update(ctx, customerID, estimateID, fields)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// Delete removes a single estimate. Deleting a document that is already
// gone is not an error.
func (u *EstimateUseCase) Delete(ctx context.Context, customerID, estimateID string) error {
	customerID = strings.TrimSpace(customerID)
	estimateID = strings.TrimSpace(estimateID)
	if customerID == "" {
		return ErrInvalidCustomerID
	}
	if estimateID == "" {
		return ErrInvalidEstimateID
	}
	return u.repo.Delete(ctx, customerID, estimateID)
}
