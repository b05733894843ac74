package entities

// Customer owns zero or more saved estimates.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Deleting a customer cascades over its estimate partition first; the
// customer row is only removed once no estimates remain.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
