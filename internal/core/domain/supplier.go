package domain

import "time"

// Supplier is a vendor record. SupplierCode and Email are unique.
type Supplier struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	SupplierCode  string    `json:"supplier_code" bson:"supplier_code"`
	SupplierName  string    `json:"supplier_name" bson:"supplier_name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	ContactPerson string    `json:"contact_person" bson:"contact_person"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	Address       string    `json:"address" bson:"address"`
	Active        bool      `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
