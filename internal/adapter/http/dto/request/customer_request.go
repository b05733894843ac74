package request

type AddCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	CustomerID   string                 `json:"customerId"`
	CustomerData map[string]interface{} `json:"customerData"`
}

type DeleteCustomerRequest struct {
	CustomerID string `json:"customerId"`
}
