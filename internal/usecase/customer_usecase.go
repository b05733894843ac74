package usecase

import (
	"context"
	"errors"
	"strings"

	"onecrew_paving/internal/domain/entities"
	"onecrew_paving/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrMissingCustomerFields = errors.New("name and address are required")
	ErrMissingCustomerData   = errors.New("customer data is required")
	ErrCustomerNotFound      = errors.New("customer not found")
)

// ICustomerUseCase exposes customer operations, including the cascade
// delete over the customer's estimates.

type ICustomerUseCase interface {
	Create(ctx context.Context, name, address string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	customers interfaces.ICustomerRepository
	estimates interfaces.IEstimateRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(customers interfaces.ICustomerRepository, estimates interfaces.IEstimateRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, estimates: estimates}
}

func (u *CustomerUseCase) Create(ctx context.Context, name, address string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return entities.Customer{}, ErrMissingCustomerFields
	}

	c := entities.Customer{
		ID:      uuid.NewString(),
		Name:    name,
		Address: address,
	}
	return u.customers.Create(ctx, c)
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.customers.List(ctx)
}

// Update merges fields into an existing customer row, leaving untouched
// fields as they were. A missing target fails with ErrCustomerNotFound.
func (u *CustomerUseCase) Update(ctx context.Context, id string, fields map[string]interface{}) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if len(fields) == 0 {
		return entities.Customer{}, ErrMissingCustomerData
	}

	updated, err := u.customers.Update(ctx, id, fields)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// Delete removes every estimate owned by the customer and then the customer
// row itself, in that order. The ordering matters: deleting the customer
// first would strand its estimates in an unreachable partition. If the
// estimate cascade succeeds and the customer delete fails, the result is a
// customer with no estimates; there is no rollback.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	if err := u.estimates.DeleteAllByCustomerID(ctx, id); err != nil {
		return err
	}
	return u.customers.Delete(ctx, id)
}
