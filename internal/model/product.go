package model

import (
	"fmt"
	"strings"
	"time"
)

// placeholderImageFormat is filled with the creation time in epoch milliseconds.
const placeholderImageFormat = "https://picsum.photos/seed/%d/400/300"

// Product represents a product in the catalogue.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       Price     `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductInput represents the request payload for creating or replacing a product.
type ProductInput struct {
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// Validate checks that every required field is present.
// It reports all missing fields at once rather than stopping at the first.
func (in *ProductInput) Validate() error {
	var missing []string

	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(string(in.Price)) == "" {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// HasImage reports whether the input carries a non-blank image URL.
func (in *ProductInput) HasImage() bool {
	return strings.TrimSpace(in.Image) != ""
}

// PlaceholderImageURL returns the generated image URL used when a product has none.
func PlaceholderImageURL(t time.Time) string {
	return fmt.Sprintf(placeholderImageFormat, t.UnixMilli())
}
