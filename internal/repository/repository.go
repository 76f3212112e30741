package repository

import (
	"context"

	"products-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
// Lookups that match no row return a nil product (or false) and a nil error.
type ProductRepository interface {
	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a product and returns the persisted row.
	Create(ctx context.Context, input *model.ProductInput) (*model.Product, error)

	// Update overwrites the mutable fields of a product and returns the updated row.
	Update(ctx context.Context, id int64, input *model.ProductInput) (*model.Product, error)

	// Delete removes a product. It reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
