package service

import (
	"errors"
	"unicode/utf8"

	"github.com/ibeloyar/orderapi/internal/model"
)

const (
	minNameLen         = 1
	maxCustomerNameLen = 100
	maxProductNameLen  = 200
)

// validateCreateOrder проверяет поля нового заказа и подставляет
// статус по умолчанию, если он не указан
func validateCreateOrder(input *model.CreateOrderDTO) error {
	customerLen := utf8.RuneCountInString(input.CustomerName)
	if customerLen < minNameLen || customerLen > maxCustomerNameLen {
		return errors.New(model.ErrCustomerNameLengthMessage)
	}

	productLen := utf8.RuneCountInString(input.ProductName)
	if productLen < minNameLen || productLen > maxProductNameLen {
		return errors.New(model.ErrProductNameLengthMessage)
	}

	if input.Quantity <= 0 {
		return errors.New(model.ErrQuantityNotPositiveMessage)
	}

	if input.Price <= 0 {
		return errors.New(model.ErrPriceNotPositiveMessage)
	}

	if input.Status == "" {
		input.Status = model.OrderStatusPending
		return nil
	}

	if !input.Status.Valid() {
		return errors.New(model.ErrUnknownOrderStatusMessage)
	}

	return nil
}
