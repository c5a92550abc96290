package handler

// Request types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginResponse mirrors the token envelope the dashboard clients expect.
type loginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type registerResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type productRequest struct {
	ProductCode string  `json:"product_code" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	UnitPrice   float64 `json:"unit_price" validate:"required,gt=0"`
	Active      bool    `json:"is_active"`
}

type stockRequest struct {
	ProductID         string `json:"product_id" validate:"required"`
	Quantity          int    `json:"quantity" validate:"gte=0"`
	MinimumLevel      int    `json:"minimum_level" validate:"gte=0"`
	MaximumLevel      int    `json:"maximum_level" validate:"gte=0"`
	WarehouseLocation string `json:"warehouse_location"`
}

type saleRequest struct {
	SaleOrderNumber string  `json:"sale_order_number" validate:"required"`
	ProductID       string  `json:"product_id" validate:"required"`
	Quantity        int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice       float64 `json:"unit_price" validate:"required,gt=0"`
	TotalAmount     float64 `json:"total_amount" validate:"gte=0"`
	Status          string  `json:"status" validate:"required"`
	CustomerName    string  `json:"customer_name"`
	DeliveryAddress string  `json:"delivery_address"`
}

type supplierRequest struct {
	SupplierCode  string `json:"supplier_code" validate:"required"`
	SupplierName  string `json:"supplier_name" validate:"required"`
	Description   string `json:"description"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Active        bool   `json:"is_active"`
}
