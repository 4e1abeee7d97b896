package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelcraft-studio/marketplace-api/internal/catalog/application"
	"github.com/pixelcraft-studio/marketplace-api/internal/catalog/domain"
)

const collectionName = "products"

type Repository struct {
	log *slog.Logger
	col *mongo.Collection
}

func NewRepository(log *slog.Logger, db *mongo.Database) *Repository {
	return &Repository{log: log, col: db.Collection(collectionName)}
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *Repository) InsertMany(ctx context.Context, products []domain.Product) error {
	docs := make([]any, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := r.col.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, application.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("find product %s: %w", id, err)
	}
	return p, nil
}
