package usecase

import (
	"context"
	"errors"
	"testing"

	"respresso/internal/domain/entities"
	mock_interfaces "respresso/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newProductUseCaseForTest(t *testing.T) (*ProductUseCase, *mock_interfaces.MockIProductRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	return NewProductUseCase(repo), repo
}

func TestProductUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc, _ := newProductUseCaseForTest(t)
		_, err := uc.Create(context.Background(), ProductInput{Name: "  ", Price: 5})
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc, _ := newProductUseCaseForTest(t)
		_, err := uc.Create(context.Background(), ProductInput{Name: "Cola", Price: -1})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("negative stock", func(t *testing.T) {
		uc, _ := newProductUseCaseForTest(t)
		_, err := uc.Create(context.Background(), ProductInput{Name: "Cola", Price: 5, Stock: -1})
		if !errors.Is(err, ErrInvalidProductStock) {
			t.Fatalf("expected ErrInvalidProductStock, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newProductUseCaseForTest(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.Name != "Cola" || p.Category != "Drinks" {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			})

		product, err := uc.Create(context.Background(), ProductInput{
			Name:     " Cola ",
			Price:    5,
			Type:     entities.ProductTypeDrink,
			Category: " Drinks ",
			Stock:    10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Stock != 10 {
			t.Fatalf("unexpected stock: %d", product.Stock)
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newProductUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, err := uc.Update(context.Background(), "p1", ProductInput{Name: "Cola", Price: 5})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newProductUseCaseForTest(t)

		existing := entities.Product{ID: "p1", Name: "Cola", Price: 5, Stock: 10}
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(existing, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.Price != 6 || p.Stock != 8 {
					t.Fatalf("unexpected update: %+v", p)
				}
				return p, nil
			})

		if _, err := uc.Update(context.Background(), "p1", ProductInput{Name: "Cola", Price: 6, Stock: 8}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newProductUseCaseForTest(t)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newProductUseCaseForTest(t)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		if err := uc.Delete(context.Background(), "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
