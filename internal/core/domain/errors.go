package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserProtected      = errors.New("operation not permitted on own account")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")

	ErrProductNotFound  = errors.New("product not found")
	ErrProductExists    = errors.New("product already exists")
	ErrStockNotFound    = errors.New("stock not found")
	ErrStockExists      = errors.New("stock already exists")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrSaleExists       = errors.New("sale already exists")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSupplierExists   = errors.New("supplier already exists")
)
