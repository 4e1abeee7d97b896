package domain

import "time"

type OrderStatus string

const StatusPending OrderStatus = "pending"

type Order struct {
	ID            string      `json:"id"`
	CustomerEmail string      `json:"customer_email"`
	CustomerNote  string      `json:"customer_note,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is a client-supplied snapshot of a catalog product at the moment
// of ordering. Name and price are recorded as submitted, not re-derived from
// the catalog.
type OrderItem struct {
	ProductID       string         `json:"product_id"`
	ProductName     string         `json:"product_name"`
	Quantity        int            `json:"quantity"`
	Price           float64        `json:"price"`
	SelectedOptions map[string]any `json:"selected_options,omitempty"`
}

// NewOrder builds a pending order from submitted item snapshots, computing
// the total from the submitted prices and quantities verbatim.
func NewOrder(id, email, note string, items []OrderItem) Order {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	return Order{
		ID:            id,
		CustomerEmail: email,
		CustomerNote:  note,
		Items:         items,
		TotalAmount:   total,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}
