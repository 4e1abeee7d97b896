package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixelcraft-studio/marketplace-api/internal/order/application"
	"github.com/pixelcraft-studio/marketplace-api/internal/order/domain"
)

const collectionName = "orders"

// createdAtLayout is fixed-width (nine fractional digits, zero-padded) so
// lexicographic order on the stored string matches chronological order.
// RFC3339Nano trims trailing zeros, giving variable-width strings that
// compare wrongly ("...00.5Z" > "...00.51Z").
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// orderDocument is the persisted shape of an order. created_at is stored as
// an RFC3339 string rather than a native date so ids and timestamps survive
// storage engines that have no temporal type.
type orderDocument struct {
	ID            string         `bson:"id"`
	CustomerEmail string         `bson:"customer_email"`
	CustomerNote  string         `bson:"customer_note,omitempty"`
	Items         []itemDocument `bson:"items"`
	TotalAmount   float64        `bson:"total_amount"`
	Status        string         `bson:"status"`
	CreatedAt     string         `bson:"created_at"`
}

type itemDocument struct {
	ProductID       string         `bson:"product_id"`
	ProductName     string         `bson:"product_name"`
	Quantity        int            `bson:"quantity"`
	Price           float64        `bson:"price"`
	SelectedOptions map[string]any `bson:"selected_options,omitempty"`
}

type Repository struct {
	log *slog.Logger
	col *mongo.Collection
	now func() time.Time
}

func NewRepository(log *slog.Logger, db *mongo.Database) *Repository {
	return &Repository{
		log: log,
		col: db.Collection(collectionName),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *Repository) Insert(ctx context.Context, o domain.Order) error {
	if _, err := r.col.InsertOne(ctx, toDocument(o)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *Repository) ListNewestFirst(ctx context.Context) ([]domain.Order, error) {
	// created_at strings use the fixed-width createdAtLayout, so sorting on
	// the stored string is sorting by creation time.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, r.fromDocument(doc))
	}
	return orders, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Order, error) {
	var doc orderDocument
	err := r.col.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, application.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("find order %s: %w", id, err)
	}
	return r.fromDocument(doc), nil
}

func toDocument(o domain.Order) orderDocument {
	items := make([]itemDocument, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemDocument(it))
	}
	return orderDocument{
		ID:            o.ID,
		CustomerEmail: o.CustomerEmail,
		CustomerNote:  o.CustomerNote,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func (r *Repository) fromDocument(doc orderDocument) domain.Order {
	items := make([]domain.OrderItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, domain.OrderItem(it))
	}
	return domain.Order{
		ID:            doc.ID,
		CustomerEmail: doc.CustomerEmail,
		CustomerNote:  doc.CustomerNote,
		Items:         items,
		TotalAmount:   doc.TotalAmount,
		Status:        domain.OrderStatus(doc.Status),
		CreatedAt:     r.parseCreatedAt(doc.ID, doc.CreatedAt),
	}
}

// parseCreatedAt reads the stored timestamp back into UTC. A value that does
// not parse is replaced with the current time so the read still succeeds; the
// substitution is logged, not surfaced to the caller.
func (r *Repository) parseCreatedAt(orderID, raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		r.log.Warn("unparseable created_at, substituting current time", "order_id", orderID, "created_at", raw, "err", err)
		return r.now()
	}
	return t.UTC()
}
