package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	catalogapp "github.com/pixelcraft-studio/marketplace-api/internal/catalog/application"
	"github.com/pixelcraft-studio/marketplace-api/internal/order/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// ValidationError marks a business-rule failure on a create request. Its
// message is safe to return to the client verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	ErrEmailRequired   = &ValidationError{msg: "Customer email is required"}
	ErrNoItems         = &ValidationError{msg: "Order must contain at least one item"}
	ErrInvalidQuantity = &ValidationError{msg: "Item quantity must be a positive integer"}
)

type CreateOrder struct {
	CustomerEmail string
	CustomerNote  string
	Items         []domain.OrderItem
}

type Service struct {
	log          *slog.Logger
	repo         OrderRepository
	catalog      CatalogReader
	verifyPrices bool
}

type Option func(*Service)

// WithPriceVerification makes Create check each item's product id and unit
// price against the catalog instead of trusting the submitted snapshot.
func WithPriceVerification(catalog CatalogReader) Option {
	return func(s *Service) {
		s.catalog = catalog
		s.verifyPrices = true
	}
}

func NewService(log *slog.Logger, repo OrderRepository, opts ...Option) *Service {
	s := &Service{log: log, repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the request, computes the total from the submitted item
// snapshots, and persists the order. Validation runs in a fixed sequence and
// the first failure wins.
func (s *Service) Create(ctx context.Context, req CreateOrder) (domain.Order, error) {
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return domain.Order{}, ErrEmailRequired
	}
	if len(req.Items) == 0 {
		return domain.Order{}, ErrNoItems
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, ErrInvalidQuantity
		}
	}
	if s.verifyPrices {
		if err := s.checkPrices(ctx, req.Items); err != nil {
			return domain.Order{}, err
		}
	}

	o := domain.NewOrder(uuid.NewString(), req.CustomerEmail, req.CustomerNote, req.Items)
	if err := s.repo.Insert(ctx, o); err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order created", "order_id", o.ID, "items", len(o.Items), "total", o.TotalAmount)
	return o, nil
}

func (s *Service) checkPrices(ctx context.Context, items []domain.OrderItem) error {
	for _, item := range items {
		p, err := s.catalog.Get(ctx, item.ProductID)
		if errors.Is(err, catalogapp.ErrProductNotFound) {
			return &ValidationError{msg: fmt.Sprintf("Item references unknown product %s", item.ProductID)}
		}
		if err != nil {
			return err
		}
		if p.Price != item.Price {
			return &ValidationError{msg: fmt.Sprintf("Item %s price %g does not match catalog price %g", item.ProductID, item.Price, p.Price)}
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListNewestFirst(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}
