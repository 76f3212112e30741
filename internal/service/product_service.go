package service

import (
	"context"
	"fmt"
	"time"

	"products-api/internal/model"
	"products-api/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
		now:         time.Now,
	}
}

// GetAll retrieves every product.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if !validID(id) {
		s.logger.Warn().Int64("product_id", id).Msg("invalid product ID")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates the input and stores a new product.
// A blank image is replaced by a placeholder derived from the current time.
func (s *productService) Create(ctx context.Context, input *model.ProductInput) (*model.Product, error) {
	normalised, err := s.prepare(input)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, normalised)
	if err != nil {
		s.logger.Error().Err(err).Str("name", normalised.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", product.ID).Msg("product created")

	return product, nil
}

// Update validates the input and replaces every mutable field of a product.
// Fields are not merged with the stored row, so image follows Create's rule:
// a blank image is replaced by a fresh placeholder rather than keeping the
// stored one.
func (s *productService) Update(ctx context.Context, id int64, input *model.ProductInput) (*model.Product, error) {
	if !validID(id) {
		return nil, model.ErrProductNotFound
	}

	normalised, err := s.prepare(input)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, normalised)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if !validID(id) {
		return model.ErrProductNotFound
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

// validID reports whether id can exist in the products table.
func validID(id int64) bool {
	return id > 0 && id <= model.MaxProductID
}

// prepare validates the input and returns a copy with the image defaulted.
func (s *productService) prepare(input *model.ProductInput) (*model.ProductInput, error) {
	if input == nil {
		input = &model.ProductInput{}
	}

	if err := input.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("product input rejected")
		return nil, err
	}

	normalised := *input
	if !normalised.HasImage() {
		normalised.Image = model.PlaceholderImageURL(s.now())
	}

	return &normalised, nil
}
