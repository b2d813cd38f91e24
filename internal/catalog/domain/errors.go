package domain

import (
	"errors"
	"fmt"
)

// Not-found errors: a referenced entity does not exist
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrStockNotFound    = errors.New("product stock not found")
	ErrRatingNotFound   = errors.New("product rating not found")
	ErrReviewNotFound   = errors.New("review not found")
)

// Conflict errors: a business rule blocks the write
var (
	ErrSKUExists       = errors.New("sku already exists")
	ErrCategoryExists  = errors.New("category already exists")
	ErrCategoryInUse   = errors.New("cannot delete a category with associated products")
	ErrSupplierInUse   = errors.New("cannot delete a supplier with associated products")
	ErrProductHasStock = errors.New("cannot delete a product with stock on hand")
	ErrNotReviewOwner  = errors.New("review belongs to another user")
)

// ValidationError reports a field-level validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-level validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err is any of the not-found errors
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrProductNotFound, ErrCategoryNotFound, ErrSupplierNotFound,
		ErrStockNotFound, ErrRatingNotFound, ErrReviewNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is any of the business-rule conflicts
func IsConflict(err error) bool {
	for _, target := range []error{
		ErrSKUExists, ErrCategoryExists, ErrCategoryInUse,
		ErrSupplierInUse, ErrProductHasStock, ErrNotReviewOwner,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidation reports whether err carries a field-level validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
