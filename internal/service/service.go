package service

import (
	"context"

	"products-api/internal/model"
)

// ProductService defines operations for product management.
// Operations on an id with no matching product return model.ErrProductNotFound.
type ProductService interface {
	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create validates the input and stores a new product.
	Create(ctx context.Context, input *model.ProductInput) (*model.Product, error)

	// Update validates the input and replaces every mutable field of a product.
	Update(ctx context.Context, id int64, input *model.ProductInput) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}
