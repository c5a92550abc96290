package domain

import "time"

// Product is a catalogue entry. ProductCode is unique across the catalogue
// and enforced by the storage layer at write time.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ProductCode string    `json:"product_code" bson:"product_code"`
	ProductName string    `json:"product_name" bson:"product_name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category" bson:"category"`
	UnitPrice   float64   `json:"unit_price" bson:"unit_price"`
	Active      bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
