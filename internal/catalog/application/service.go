package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pixelcraft-studio/marketplace-api/internal/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	log  *slog.Logger
	repo ProductRepository
}

func NewService(log *slog.Logger, repo ProductRepository) *Service {
	return &Service{log: log, repo: repo}
}

// SeedIfEmpty inserts the launch catalog when the store holds no products.
// The check and the insert are not atomic; a single instance is assumed to
// run the startup path at a time.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Debug("catalog already seeded", "products", count)
		return nil
	}

	products := domain.SeedProducts()
	if err := s.repo.InsertMany(ctx, products); err != nil {
		return err
	}
	s.log.Info("catalog seeded", "products", len(products))
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.Get(ctx, id)
}
