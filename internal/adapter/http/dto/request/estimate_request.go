package request

import (
	"strings"

	"onecrew_paving/internal/domain/entities"
)

// LineItemRequest is one raw row from the estimate form. Numeric fields are
// deliberately untyped: the client may send numbers or strings and either
// must coerce the same way.
type LineItemRequest struct {
	Type   string      `json:"type"`
	Name   string      `json:"name"`
	Units  interface{} `json:"units"`
	Time   interface{} `json:"time"`
	Rate   interface{} `json:"rate"`
	Margin interface{} `json:"margin"`
}

type EstimateRequest struct {
	Items []LineItemRequest `json:"items"`
}

// ResolveItems coerces every row into a domain line item, applying the
// parse-or-default rule per numeric field. Category validation is left to
// the estimator.
func (r EstimateRequest) ResolveItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			Type:   entities.Category(strings.TrimSpace(it.Type)),
			Name:   it.Name,
			Units:  numberOrDefault(it.Units, defaultNumericValue),
			Time:   numberOrDefault(it.Time, defaultNumericValue),
			Rate:   numberOrDefault(it.Rate, defaultNumericValue),
			Margin: numberOrDefault(it.Margin, defaultNumericValue),
		})
	}
	return items
}

// EstimateDocumentRequest is the computed breakdown a client sends back for
// persistence. By this point everything is numeric: it is our own /estimate
// response being round-tripped.
type EstimateDocumentRequest struct {
	DetailedItems DetailedItemsRequest `json:"detailedItems"`
	TotalCost     float64              `json:"totalCost"`
	TotalPrice    float64              `json:"totalPrice"`
}

type DetailedItemsRequest struct {
	Labor     []DetailedItemRequest `json:"labor"`
	Materials []DetailedItemRequest `json:"materials"`
	Equipment []DetailedItemRequest `json:"equipment"`
}

type DetailedItemRequest struct {
	Name   string  `json:"name"`
	Units  float64 `json:"units"`
	Time   float64 `json:"time"`
	Rate   float64 `json:"rate"`
	Margin float64 `json:"margin"`
	Cost   float64 `json:"cost"`
	Price  float64 `json:"price"`
}

func (r EstimateDocumentRequest) ToEntity() entities.Estimate {
	return entities.Estimate{
		DetailedItems: entities.DetailedItems{
			Labor:     toDetailedItems(r.DetailedItems.Labor),
			Materials: toDetailedItems(r.DetailedItems.Materials),
			Equipment: toDetailedItems(r.DetailedItems.Equipment),
		},
		TotalCost:  r.TotalCost,
		TotalPrice: r.TotalPrice,
	}
}

func toDetailedItems(items []DetailedItemRequest) []entities.DetailedItem {
	out := make([]entities.DetailedItem, 0, len(items))
	for _, item := range items {
		out = append(out, entities.DetailedItem(item))
	}
	return out
}

type SaveEstimateRequest struct {
	CustomerID string                   `json:"customerId"`
	Estimate   *EstimateDocumentRequest `json:"estimate"`
}

func (r SaveEstimateRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

type UpdateEstimateRequest struct {
	CustomerID string                 `json:"customerId"`
	EstimateID string                 `json:"estimateId"`
	Estimate   map[string]interface{} `json:"estimate"`
}

type DeleteEstimateRequest struct {
	CustomerID string `json:"customerId"`
	EstimateID string `json:"estimateId"`
}
