package domain

// Product is a purchasable digital item. Products are created only by the
// startup seed and never change afterwards.
type Product struct {
	ID          string         `json:"id" bson:"id"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	Price       float64        `json:"price" bson:"price"`
	Category    string         `json:"category" bson:"category"`
	Options     map[string]any `json:"options,omitempty" bson:"options,omitempty"`
	ImageURL    string         `json:"image_url,omitempty" bson:"image_url,omitempty"`
}
