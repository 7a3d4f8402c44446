// Package apperr defines the error taxonomy shared by the stores and the
// HTTP layer: not-found lookups, checkout stock shortfalls, and input
// validation failures. Anything else is treated as an internal storage fault.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for any referenced entity that does not exist.
// Typed errors below match it via errors.Is.
var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientStockError names the first product in a checkout batch whose
// requested quantity exceeds the live stock.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
