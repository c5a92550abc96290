package domain

import "time"

// SaleStatus is the free-form order status carried by a sale. The original
// data uses values such as "PENDING", "SHIPPED" and "DELIVERED"; the service
// stores whatever the caller supplies and filters by exact match.
type Sale struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	SaleOrderNumber string    `json:"sale_order_number" bson:"sale_order_number"`
	ProductID       string    `json:"product_id" bson:"product_id"`
	Quantity        int       `json:"quantity" bson:"quantity"`
	UnitPrice       float64   `json:"unit_price" bson:"unit_price"`
	TotalAmount     float64   `json:"total_amount" bson:"total_amount"`
	Status          string    `json:"status" bson:"status"`
	CustomerName    string    `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	DeliveryAddress string    `json:"delivery_address,omitempty" bson:"delivery_address,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
