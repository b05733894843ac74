package interfaces

import (
	"context"

	"onecrew_paving/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for customers.
//
// Update follows the repository convention of returning the zero Customer
// with a nil error when the target row does not exist. Delete removes only
// the customer row; cascading over the estimate partition is the caller's
// responsibility and must happen first.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
