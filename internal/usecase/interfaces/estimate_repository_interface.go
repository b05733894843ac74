package interfaces

import (
	"context"

	"onecrew_paving/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for estimates saved
// under a customer.
//
// Conventions:
//   - lookups return the zero Estimate (empty ID) with a nil error when the
//     document does not exist; use cases translate that to a not-found error
//   - Update applies a partial merge and follows the same zero-value
//     convention when the target document is missing
//   - Delete is idempotent at the store level
//   - DeleteAllByCustomerID is the batched cascade used before a customer
//     row is removed

type IEstimateRepository interface {
	Save(ctx context.Context, customerID string, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, customerID, estimateID string) (entities.Estimate, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error)
	Update(ctx context.Context, customerID, estimateID string, fields map[string]interface{}) (entities.Estimate, error)
	Delete(ctx context.Context, customerID, estimateID string) error
	DeleteAllByCustomerID(ctx context.Context, customerID string) error
}
