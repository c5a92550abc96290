package domain

import "time"

// Stock tracks the on-hand quantity of a single product in a warehouse.
// One stock record exists per product. A record is "low" when its quantity
// drops below its own MinimumLevel.
type Stock struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	ProductID         string    `json:"product_id" bson:"product_id"`
	Quantity          int       `json:"quantity" bson:"quantity"`
	MinimumLevel      int       `json:"minimum_level" bson:"minimum_level"`
	MaximumLevel      int       `json:"maximum_level" bson:"maximum_level"`
	WarehouseLocation string    `json:"warehouse_location,omitempty" bson:"warehouse_location,omitempty"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// IsLow reports whether the record is below its own minimum level.
func (s Stock) IsLow() bool {
	return s.Quantity < s.MinimumLevel
}
