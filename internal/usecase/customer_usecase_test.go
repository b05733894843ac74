package usecase

import (
	"context"
	"errors"
	"testing"

	"onecrew_paving/internal/domain/entities"
	mock_interfaces "onecrew_paving/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		cases := []struct {
			name    string
			address string
		}{
			{"", "123 Main St"},
			{"Acme Paving", ""},
			{"   ", "123 Main St"},
			{"", ""},
		}
		for _, c := range cases {
			_, err := uc.Create(context.Background(), c.name, c.address)
			if !errors.Is(err, ErrMissingCustomerFields) {
				t.Fatalf("name=%q address=%q: expected ErrMissingCustomerFields, got %v", c.name, c.address, err)
			}
		}
	})

	t.Run("assigns id and trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.Name != "Acme Paving" || c.Address != "123 Main St" {
					t.Fatalf("expected trimmed fields, got %+v", c)
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), "  Acme Paving  ", "  123 Main St  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected non-empty id, got %+v", created)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), "Acme Paving", "123 Main St"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCustomerUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo, nil)

	expected := []entities.Customer{{ID: "cust-1", Name: "Acme Paving", Address: "123 Main St"}}
	repo.EXPECT().List(gomock.Any()).Return(expected, nil)

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].ID != "cust-1" {
		t.Fatalf("unexpected customers: %+v", res)
	}
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("missing arguments", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		if _, err := uc.Update(context.Background(), "  ", map[string]interface{}{"name": "x"}); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "cust-1", nil); !errors.Is(err, ErrMissingCustomerData) {
			t.Fatalf("expected ErrMissingCustomerData, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "cust-1", map[string]interface{}{}); !errors.Is(err, ErrMissingCustomerData) {
			t.Fatalf("expected ErrMissingCustomerData, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Customer{}, nil)

		_, err := uc.Update(context.Background(), "cust-1", map[string]interface{}{"name": "x"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		fields := map[string]interface{}{"address": "456 Oak Ave"}
		repo.EXPECT().Update(gomock.Any(), "cust-1", fields).Return(entities.Customer{ID: "cust-1", Name: "Acme Paving", Address: "456 Oak Ave"}, nil)

		res, err := uc.Update(context.Background(), " cust-1 ", fields)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Address != "456 Oak Ave" {
			t.Fatalf("unexpected customer: %+v", res)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("cascades estimates before the customer row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewCustomerUseCase(customers, estimates)

		gomock.InOrder(
			estimates.EXPECT().DeleteAllByCustomerID(gomock.Any(), "cust-1").Return(nil),
			customers.EXPECT().Delete(gomock.Any(), "cust-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), " cust-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cascade failure stops the customer delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewCustomerUseCase(customers, estimates)

		estimates.EXPECT().DeleteAllByCustomerID(gomock.Any(), "cust-1").Return(errors.New("transact failed"))

		if err := uc.Delete(context.Background(), "cust-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
