package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"onecrew_paving/internal/domain/entities"
	mock_interfaces "onecrew_paving/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_Compute(t *testing.T) {
	t.Run("nil items", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Compute(nil)
		if !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Compute([]entities.LineItem{})
		if !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("labor item", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		res, err := uc.Compute([]entities.LineItem{
			{Type: entities.CategoryLabor, Name: "Digout", Units: 3, Time: 3, Rate: 30, Margin: 30},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.DetailedItems.Labor) != 1 {
			t.Fatalf("expected one labor item, got %+v", res.DetailedItems)
		}
		item := res.DetailedItems.Labor[0]
		if item.Cost != 270 {
			t.Fatalf("expected cost 270, got %v", item.Cost)
		}
		if math.Abs(item.Price-385.7142857142857) > 1e-9 {
			t.Fatalf("expected price ~385.71, got %v", item.Price)
		}
		if res.TotalCost != item.Cost || res.TotalPrice != item.Price {
			t.Fatalf("totals should match the single item: %+v", res)
		}
	})

	t.Run("materials time is forced to one", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		res, err := uc.Compute([]entities.LineItem{
			{Type: entities.CategoryMaterials, Name: "Asphalt", Units: 100, Time: 999, Rate: 75, Margin: 20},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item := res.DetailedItems.Materials[0]
		if item.Time != 1 {
			t.Fatalf("expected time forced to 1, got %v", item.Time)
		}
		if item.Cost != 7500 {
			t.Fatalf("expected cost 7500, got %v", item.Cost)
		}
		if item.Price != 9375 {
			t.Fatalf("expected price 9375, got %v", item.Price)
		}
	})

	t.Run("totals accumulate across categories", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		items := []entities.LineItem{
			{Type: entities.CategoryLabor, Name: "Digout", Units: 3, Time: 3, Rate: 30, Margin: 30},
			{Type: entities.CategoryMaterials, Name: "Asphalt", Units: 100, Rate: 75, Margin: 20},
			{Type: entities.CategoryEquipment, Name: "Roller", Units: 1, Time: 8, Rate: 55},
		}
		res, err := uc.Compute(items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var wantCost, wantPrice float64
		for _, bucket := range [][]entities.DetailedItem{res.DetailedItems.Labor, res.DetailedItems.Materials, res.DetailedItems.Equipment} {
			for _, item := range bucket {
				wantCost += item.Cost
				wantPrice += item.Price
			}
		}
		if res.TotalCost != wantCost {
			t.Fatalf("expected total cost %v, got %v", wantCost, res.TotalCost)
		}
		if res.TotalPrice != wantPrice {
			t.Fatalf("expected total price %v, got %v", wantPrice, res.TotalPrice)
		}
		// Zero margin means price equals cost for that item.
		if eq := res.DetailedItems.Equipment[0]; eq.Price != eq.Cost {
			t.Fatalf("zero margin should not mark up: %+v", eq)
		}
	})

	t.Run("per category order follows input order", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		res, err := uc.Compute([]entities.LineItem{
			{Type: entities.CategoryLabor, Name: "first", Units: 1, Time: 1, Rate: 1},
			{Type: entities.CategoryEquipment, Name: "between", Units: 1, Time: 1, Rate: 1},
			{Type: entities.CategoryLabor, Name: "second", Units: 1, Time: 1, Rate: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.DetailedItems.Labor) != 2 {
			t.Fatalf("expected two labor items, got %d", len(res.DetailedItems.Labor))
		}
		if res.DetailedItems.Labor[0].Name != "first" || res.DetailedItems.Labor[1].Name != "second" {
			t.Fatalf("labor order not preserved: %+v", res.DetailedItems.Labor)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Compute([]entities.LineItem{
			{Type: "overhead", Name: "Misc", Units: 1, Time: 1, Rate: 1},
		})
		if !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("margin at or above 100", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		for _, margin := range []float64{100, 150} {
			_, err := uc.Compute([]entities.LineItem{
				{Type: entities.CategoryLabor, Name: "Digout", Units: 1, Time: 1, Rate: 1, Margin: margin},
			})
			if !errors.Is(err, ErrInvalidMargin) {
				t.Fatalf("margin %v: expected ErrInvalidMargin, got %v", margin, err)
			}
		}
	})

	t.Run("negative margin discounts", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		res, err := uc.Compute([]entities.LineItem{
			{Type: entities.CategoryLabor, Name: "Digout", Units: 1, Time: 1, Rate: 100, Margin: -100},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := res.DetailedItems.Labor[0].Price; got != 50 {
			t.Fatalf("expected price 50, got %v", got)
		}
	})
}

func TestEstimateUseCase_Save(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Save(context.Background(), "   ", entities.Estimate{})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.Save(context.Background(), "cust-1", entities.Estimate{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("assigns id and created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), "cust-1", gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, customerID string, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" {
					t.Fatalf("expected generated id")
				}
				if e.CreatedAt.IsZero() {
					t.Fatalf("expected server-assigned created at")
				}
				return e, nil
			},
		)

		id, err := uc.Save(context.Background(), " cust-1 ", entities.Estimate{TotalCost: 270, CreatedAt: time.Time{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" {
			t.Fatalf("expected non-empty estimate id")
		}
	})

	t.Run("client timestamps are overwritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		stale := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().Save(gomock.Any(), "cust-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, e entities.Estimate) (entities.Estimate, error) {
				if e.CreatedAt.Equal(stale) {
					t.Fatalf("created at should be stamped at save time")
				}
				return e, nil
			},
		)

		if _, err := uc.Save(context.Background(), "cust-1", entities.Estimate{CreatedAt: stale}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		if _, err := uc.GetByID(context.Background(), "", "est-1"); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
		if _, err := uc.GetByID(context.Background(), "cust-1", "  "); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1", "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "cust-1", "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		expected := entities.Estimate{ID: "est-1", TotalCost: 270}
		repo.EXPECT().GetByID(gomock.Any(), "cust-1", "est-1").Return(expected, nil)

		res, err := uc.GetByID(context.Background(), " cust-1 ", " est-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "est-1" || res.TotalCost != 270 {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})
}

func TestEstimateUseCase_ListByCustomer(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		if _, err := uc.ListByCustomer(context.Background(), ""); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Estimate{}, nil)

		res, err := uc.ListByCustomer(context.Background(), "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 0 {
			t.Fatalf("expected empty list, got %+v", res)
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	t.Run("missing arguments", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		if _, err := uc.Update(context.Background(), "", "est-1", map[string]interface{}{"totalCost": 1}); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "cust-1", "", map[string]interface{}{"totalCost": 1}); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "cust-1", "est-1", nil); !errors.Is(err, ErrMissingEstimate) {
			t.Fatalf("expected ErrMissingEstimate, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "cust-1", "est-1", gomock.Any()).Return(entities.Estimate{}, nil)

		_, err := uc.Update(context.Background(), "cust-1", "est-1", map[string]interface{}{"totalCost": 1})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		fields := map[string]interface{}{"totalCost": 300.0}
		repo.EXPECT().Update(gomock.Any(), "cust-1", "est-1", fields).Return(entities.Estimate{ID: "est-1", TotalCost: 300}, nil)

		res, err := uc.Update(context.Background(), "cust-1", "est-1", fields)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalCost != 300 {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("missing arguments", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		if err := uc.Delete(context.Background(), "", "est-1"); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
		if err := uc.Delete(context.Background(), "cust-1", ""); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "cust-1", "est-1").Return(nil)

		if err := uc.Delete(context.Background(), " cust-1 ", " est-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
