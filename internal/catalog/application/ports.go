package application

import (
	"context"

	"github.com/pixelcraft-studio/marketplace-api/internal/catalog/domain"
)

type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
}
