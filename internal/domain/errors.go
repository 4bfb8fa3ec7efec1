package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a sale line requests more units
	// than the product currently holds.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInsufficientHistory is returned when a return is requested for a
	// product with no recorded sale, or for more units than the latest sale
	// record holds.
	ErrInsufficientHistory = errors.New("insufficient sale history to return")

	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)
