package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidProductPrice = errors.New("invalid product price")
	ErrInvalidProductStock = errors.New("invalid product stock")
)

// ProductInput carries the mutable product fields for create/update.
type ProductInput struct {
	Name     string
	Price    float64
	Type     entities.ProductType
	Category string
	Stock    int
	ImageURL string
}

// IProductUseCase exposes catalog management.

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidProductName
	}
	if in.Price < 0 {
		return ErrInvalidProductPrice
	}
	if in.Stock < 0 {
		return ErrInvalidProductStock
	}
	return nil
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	if err := in.validate(); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Price:     in.Price,
		Type:      in.Type,
		Category:  strings.TrimSpace(in.Category),
		Stock:     in.Stock,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if err := in.validate(); err != nil {
		return entities.Product{}, err
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Price = in.Price
	p.Type = in.Type
	p.Category = strings.TrimSpace(in.Category)
	p.Stock = in.Stock
	p.ImageURL = in.ImageURL
	p.UpdatedAt = time.Now().UTC()

	return u.repo.Save(ctx, p)
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	return u.repo.Delete(ctx, id)
}
