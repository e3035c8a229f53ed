package ports

import (
	"context"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// This is the product-lookup collaborator the estimation engine depends on:
// given a product id it returns the record carrying the partner reference,
// or reports "not found".
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
