package model

import "errors"

type APIError struct {
	Code    int    `json:"-"`
	Message string `json:"detail"`
}

const (
	ErrInternalServerMessage      = "internal server error"
	ErrOrderNotFoundMessage       = "Order not found"
	ErrCustomerNameLengthMessage  = "customer_name length must be between 1 and 100"
	ErrProductNameLengthMessage   = "product_name length must be between 1 and 200"
	ErrQuantityNotPositiveMessage = "quantity must be greater than 0"
	ErrPriceNotPositiveMessage    = "price must be greater than 0"
	ErrUnknownOrderStatusMessage  = "status must be one of: pending, processing, completed, cancelled"
)

var ErrOrderNotFound = errors.New("order not found")
