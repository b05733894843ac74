package entities

import "time"

// Category classifies a line item. The set is closed: labor, materials and
// equipment are the only buckets an estimate breakdown carries, and callers
// must treat an unrecognized category as an input error rather than
// inventing a new bucket.

type Category string

const (
	CategoryLabor     Category = "labor"
	CategoryMaterials Category = "materials"
	CategoryEquipment Category = "equipment"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryLabor, CategoryMaterials, CategoryEquipment:
		return true
	}
	return false
}

// LineItem is one raw row of estimator input. Numeric fields arrive already
// coerced by the transport layer; zero is the fallback for anything that
// did not parse.
type LineItem struct {
	Type   Category `json:"type"`
	Name   string   `json:"name"`
	Units  float64  `json:"units"`
	Time   float64  `json:"time"`
	Rate   float64  `json:"rate"`
	Margin float64  `json:"margin"`
}

// DetailedItem is a line item enriched with its derived cost and price:
//   - cost  = units * time * rate
//   - price = cost / (1 - margin/100)
type DetailedItem struct {
	Name   string  `json:"name"`
	Units  float64 `json:"units"`
	Time   float64 `json:"time"`
	Rate   float64 `json:"rate"`
	Margin float64 `json:"margin"`
	Cost   float64 `json:"cost"`
	Price  float64 `json:"price"`
}

// DetailedItems buckets computed items per category, preserving insertion
// order within each bucket.
type DetailedItems struct {
	Labor     []DetailedItem `json:"labor"`
	Materials []DetailedItem `json:"materials"`
	Equipment []DetailedItem `json:"equipment"`
}

// Append places item into the bucket for c. It reports false when c is not
// a known category; the caller decides how to surface that.
func (d *DetailedItems) Append(c Category, item DetailedItem) bool {
	switch c {
	case CategoryLabor:
		d.Labor = append(d.Labor, item)
	case CategoryMaterials:
		d.Materials = append(d.Materials, item)
	case CategoryEquipment:
		d.Equipment = append(d.Equipment, item)
	default:
		return false
	}
	return true
}

// Estimate is the priced breakdown produced by the estimator and, once
// saved, persisted under a customer.
//
// Storage model (DynamoDB):
//   - PK: customerId
//   - SK: id
//
// ID and CreatedAt are assigned at save time; a freshly computed estimate
// carries neither.
type Estimate struct {
	ID            string        `json:"id,omitempty"`
	DetailedItems DetailedItems `json:"detailedItems"`
	TotalCost     float64       `json:"totalCost"`
	TotalPrice    float64       `json:"totalPrice"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
}
