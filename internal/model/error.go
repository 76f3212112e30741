package model

import (
	"errors"
	"math"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Standard error codes for domain errors
const (
	ErrCodeInvalidProductID = "INVALID_PRODUCT_ID"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
)

// MaxProductID is the largest id the SERIAL products.id column can hold.
const MaxProductID = math.MaxInt32

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidProductID = NewDomainError(ErrCodeInvalidProductID, "Invalid product id")
)

// ValidationError lists the required fields missing from a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// AsValidationError returns the ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	return ve, true
}
