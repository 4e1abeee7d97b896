package application

import (
	"context"

	catalogdomain "github.com/pixelcraft-studio/marketplace-api/internal/catalog/domain"
	"github.com/pixelcraft-studio/marketplace-api/internal/order/domain"
)

type OrderRepository interface {
	Insert(ctx context.Context, o domain.Order) error
	// ListNewestFirst returns all orders sorted by creation time descending.
	ListNewestFirst(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
}

// CatalogReader is consulted only when price verification is enabled.
type CatalogReader interface {
	Get(ctx context.Context, id string) (catalogdomain.Product, error)
}
