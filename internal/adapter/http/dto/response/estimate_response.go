package response

import (
	"time"

	"onecrew_paving/internal/domain/entities"
)

// EstimateResponse is the body for a freshly computed, unsaved estimate.
type EstimateResponse struct {
	DetailedItems entities.DetailedItems `json:"detailedItems"`
	TotalCost     float64                `json:"totalCost"`
	TotalPrice    float64                `json:"totalPrice"`
}

func FromComputedEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		DetailedItems: e.DetailedItems,
		TotalCost:     e.TotalCost,
		TotalPrice:    e.TotalPrice,
	}
}

// StoredEstimateResponse is a persisted estimate tagged with its id.
type StoredEstimateResponse struct {
	ID            string                 `json:"id"`
	DetailedItems entities.DetailedItems `json:"detailedItems"`
	TotalCost     float64                `json:"totalCost"`
	TotalPrice    float64                `json:"totalPrice"`
	CreatedAt     time.Time              `json:"createdAt"`
}

func FromStoredEstimate(e entities.Estimate) StoredEstimateResponse {
	return StoredEstimateResponse{
		ID:            e.ID,
		DetailedItems: e.DetailedItems,
		TotalCost:     e.TotalCost,
		TotalPrice:    e.TotalPrice,
		CreatedAt:     e.CreatedAt,
	}
}

func FromStoredEstimates(estimates []entities.Estimate) []StoredEstimateResponse {
	out := make([]StoredEstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromStoredEstimate(e))
	}
	return out
}

type SaveEstimateResponse struct {
	Success    bool   `json:"success"`
	EstimateID string `json:"estimateId"`
}
