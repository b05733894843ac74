package response

import (
	"testing"

	"onecrew_paving/internal/domain/entities"
)

func TestFromCustomers(t *testing.T) {
	res := FromCustomers(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}

	res = FromCustomers([]entities.Customer{
		{ID: "cust-1", Name: "Acme Paving", Address: "123 Main St"},
	})
	if len(res) != 1 {
		t.Fatalf("expected one response, got %+v", res)
	}
	if res[0].ID != "cust-1" || res[0].Name != "Acme Paving" || res[0].Address != "123 Main St" {
		t.Fatalf("unexpected response: %+v", res[0])
	}
}
